package service

import (
	"github.com/creditdesk/credit-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	store  Storage
	rates  RateProvider
	mailer Notifier
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service. rates and mailer may be nil, in
// which case credit requests must carry an explicit interest rate and no
// decision emails are sent.
func NewService(store Storage, rates RateProvider, mailer Notifier, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, rates: rates, mailer: mailer, log: log, config: cfg}
}
