package services

import (
	"context"
	"errors"
	"log"

	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
	"gorm.io/gorm"

	"github.com/Madangopal-Redsky/Twilio-server/config"
	"github.com/Madangopal-Redsky/Twilio-server/models"
)

// Notifier is the slice of PushService the call router needs.
type Notifier interface {
	Send(ctx context.Context, deviceToken string, data map[string]string) ([]byte, error)
}

// CallCreator is satisfied by the Twilio REST client's Api service.
type CallCreator interface {
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
}

// Outbound PSTN calls fetch their instructions from Twilio's demo
// document, as the original deployment did.
const outboundCallURL = "http://demo.twilio.com/docs/voice.xml"

// CallService decides how an inbound call leg is handled and places
// outbound calls.
type CallService struct {
	db    *gorm.DB
	push  Notifier
	calls CallCreator
	cfg   config.Config
}

func NewCallService(db *gorm.DB, push Notifier, calls CallCreator, cfg config.Config) *CallService {
	return &CallService{db: db, push: push, calls: calls, cfg: cfg}
}

// HandleIncoming builds the call-control document for an inbound leg.
// With no recipient the call gets a spoken rejection; otherwise it is
// dialed to the recipient's client endpoint. When the callee is known
// and has a registered device token a voice-call push goes out too. The
// push deliberately races the dial: it is fire-and-forget, and a push
// failure never changes the document already built.
func (s *CallService) HandleIncoming(ctx context.Context, to, from string) (string, error) {
	if to == "" {
		say := &twiml.VoiceSay{Message: "No recipient specified"}
		return twiml.Voice([]twiml.Element{say})
	}

	dial := &twiml.VoiceDial{}
	dial.InnerElements = []twiml.Element{&twiml.VoiceClient{Identity: to}}
	doc, err := twiml.Voice([]twiml.Element{dial})
	if err != nil {
		return "", err
	}

	s.notifyCallee(ctx, to, from)

	return doc, nil
}

func (s *CallService) notifyCallee(ctx context.Context, to, from string) {
	if s.push == nil {
		return
	}

	var user models.User
	if err := s.db.Where("username = ?", to).First(&user).Error; err != nil {
		return
	}
	if user.FCMToken == nil || *user.FCMToken == "" {
		return
	}

	if _, err := s.push.Send(ctx, *user.FCMToken, map[string]string{
		"twi_message_type": "twilio.voice.call",
		"from":             from,
		"to":               to,
	}); err != nil {
		log.Printf("voice-call push to %q failed: %v", to, err)
	}
}

// StartCall places an outbound call from the configured number and
// returns the platform-assigned call SID.
func (s *CallService) StartCall(to string) (string, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(s.cfg.TwilioPhoneNumber)
	params.SetUrl(outboundCallURL)

	resp, err := s.calls.CreateCall(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", errors.New("call created without sid")
	}
	return *resp.Sid, nil
}
