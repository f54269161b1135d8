// Package csic is a client SDK for the CSIC club event-management API:
// session handling, typed access to every endpoint, and a query cache that
// stays coherent across mutations. The server, routing and presentation are
// external; this module is everything between them and the wire.
package csic

import (
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/config"
	"github.com/aston-csic/csic-go/logger"
	"github.com/aston-csic/csic-go/rest"
	"github.com/aston-csic/csic-go/service"
	"github.com/aston-csic/csic-go/session"
)

// Client is the assembled SDK. Session and the per-entity services share one
// credential store and one query cache, both living for the client's
// lifetime.
type Client struct {
	Session  *session.Manager
	Events   *service.EventService
	Bookings *service.BookingService
	Feedback *service.FeedbackService
	Contact  *service.ContactService
	Users    *service.UserService
}

// New wires the SDK and initializes the session from any persisted
// credential. A nil conf uses defaults.
func New(conf *config.AppConfig) (*Client, error) {
	if conf == nil {
		conf = config.Default()
	}

	if err := logger.Init(conf.API.Environment); err != nil {
		return nil, fmt.Errorf("logger.Init -> %w", err)
	}

	store, err := session.NewFileStore(conf.API.CredentialFile)
	if err != nil {
		return nil, fmt.Errorf("session.NewFileStore -> %w", err)
	}

	api := rest.NewClient(&conf.API, store)
	queries := cache.NewStore()

	c := &Client{
		Session:  session.NewManager(api, store),
		Events:   service.NewEventService(api, queries),
		Bookings: service.NewBookingService(api, queries),
		Feedback: service.NewFeedbackService(api, queries),
		Contact:  service.NewContactService(api, queries),
		Users:    service.NewUserService(api, queries),
	}

	if err = c.Session.Initialize(); err != nil {
		return nil, fmt.Errorf("c.Session.Initialize -> %w", err)
	}

	return c, nil
}
