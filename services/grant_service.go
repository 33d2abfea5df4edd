package services

import (
	twjwt "github.com/twilio/twilio-go/client/jwt"

	"github.com/Madangopal-Redsky/Twilio-server/config"
)

// GrantService mints the short-lived Twilio access tokens handed to the
// chat and voice SDKs. Tokens are signed locally with the API key secret;
// expiry is whatever the platform defaults to.
type GrantService struct {
	cfg config.Config
}

func NewGrantService(cfg config.Config) *GrantService {
	return &GrantService{cfg: cfg}
}

func (g *GrantService) accessToken(identity string) *twjwt.AccessToken {
	token := twjwt.CreateAccessToken(twjwt.AccessTokenParams{
		AccountSid:    g.cfg.TwilioAccountSID,
		SigningKeySid: g.cfg.TwilioAPIKey,
		Secret:        g.cfg.TwilioAPISecret,
		Identity:      identity,
	})
	return &token
}

// ChatToken authorizes identity against the fixed Conversations service.
func (g *GrantService) ChatToken(identity string) (string, error) {
	token := g.accessToken(identity)
	token.AddGrant(&twjwt.ChatGrant{ServiceSid: g.cfg.ConversationsServiceSID})
	return token.ToJwt()
}

// VoiceToken authorizes outgoing calls through the TwiML app and allows
// incoming calls addressed to identity.
func (g *GrantService) VoiceToken(identity string) (string, error) {
	token := g.accessToken(identity)
	token.AddGrant(&twjwt.VoiceGrant{
		Outgoing: twjwt.Outgoing{ApplicationSid: g.cfg.TwiMLAppSID},
		Incoming: twjwt.Incoming{Allow: true},
	})
	return token.ToJwt()
}
