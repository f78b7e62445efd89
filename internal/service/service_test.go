package service_test

import (
	"io"
	"testing"

	"github.com/creditdesk/credit-service/internal/config"
	"github.com/creditdesk/credit-service/internal/models"
	"github.com/creditdesk/credit-service/internal/service"
	"github.com/creditdesk/credit-service/internal/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testKeyRate = 12.5

func newTestService(t *testing.T) (*service.Service, *testutil.MemStorage) {
	t.Helper()
	store := testutil.NewMemStorage()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret"}
	svc := service.NewService(store, testutil.StaticRates{Rate: testKeyRate}, nil, logger, cfg)
	return svc, store
}

func createClient(t *testing.T, svc *service.Service, name, email string) *models.Client {
	t.Helper()
	client, err := svc.CreateClient(name, email)
	require.NoError(t, err)
	return client
}

func rate(v float64) *float64 {
	return &v
}

func createAcceptedCredit(t *testing.T, svc *service.Service, clientID int64, amount float64, duration int, interestRate float64) *models.Credit {
	t.Helper()
	credit, err := svc.CreatePersonalCredit(clientID, amount, duration, rate(interestRate), "car purchase")
	require.NoError(t, err)
	credit, err = svc.ApproveCredit(credit.ID)
	require.NoError(t, err)
	return credit
}
