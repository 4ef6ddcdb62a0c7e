package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hazemf/atmledger/pkg/app"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/testutils"
	"github.com/hazemf/atmledger/webapi"
	"github.com/stretchr/testify/suite"
)

type WebAPITestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *WebAPITestSuite) SetupTest() {
	cfg := &config.App{
		Env: "test",
		Auth: &config.Auth{
			Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.app = webapi.SetupApp(app.New(testutils.NewMemoryUoW(), cfg, logger))
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *WebAPITestSuite) request(method, path, token string, body any) (*http.Response, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func (s *WebAPITestSuite) register(username, pin string) *http.Response {
	resp, _ := s.request(fiber.MethodPost, "/auth/register", "", fiber.Map{
		"username": username, "pin": pin,
	})
	return resp
}

func (s *WebAPITestSuite) login(username, pin string) (string, *http.Response) {
	resp, env := s.request(fiber.MethodPost, "/auth/login", "", fiber.Map{
		"username": username, "pin": pin,
	})
	if resp.StatusCode != fiber.StatusOK {
		return "", resp
	}
	var data struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	return data.Token, resp
}

func (s *WebAPITestSuite) TestRegisterLoginAndLedgerFlow() {
	s.Equal(fiber.StatusCreated, s.register("alice", "1234").StatusCode)
	token, resp := s.login("alice", "1234")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.NotEmpty(token)

	for _, step := range []struct {
		path   string
		amount float64
	}{
		{"/account/deposit", 100},
		{"/account/withdraw", 40},
		{"/account/deposit", 10},
	} {
		resp, _ := s.request(fiber.MethodPost, step.path, token, fiber.Map{"amount": step.amount})
		s.Equal(fiber.StatusOK, resp.StatusCode, step.path)
	}

	resp, env := s.request(fiber.MethodGet, "/account/balance", token, nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var balance struct {
		Balance string `json:"balance"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &balance))
	s.Equal("70.00", balance.Balance)

	resp, env = s.request(fiber.MethodGet, "/account/transactions", token, nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var history struct {
		Lines []string `json:"lines"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &history))
	s.Require().Len(history.Lines, 3)
	s.Contains(history.Lines[0], "Deposit: $100.00 on ")
	s.Contains(history.Lines[1], "Withdraw: $40.00 on ")
	s.Contains(history.Lines[2], "Deposit: $10.00 on ")

	resp, env = s.request(fiber.MethodGet, "/account/series", token, nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var series struct {
		Series []struct {
			Amount string `json:"amount"`
		} `json:"series"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &series))
	s.Require().Len(series.Series, 3)
	s.Equal("100", series.Series[0].Amount)
	s.Equal("-40", series.Series[1].Amount)
	s.Equal("10", series.Series[2].Amount)
}

func (s *WebAPITestSuite) TestRegisterDuplicateUsername() {
	s.Equal(fiber.StatusCreated, s.register("alice", "1234").StatusCode)
	s.Equal(fiber.StatusConflict, s.register("alice", "9999").StatusCode)
}

func (s *WebAPITestSuite) TestLoginFailuresLookAlike() {
	s.Equal(fiber.StatusCreated, s.register("alice", "1234").StatusCode)

	_, wrongPin := s.login("alice", "0000")
	_, unknown := s.login("mallory", "0000")
	s.Equal(fiber.StatusUnauthorized, wrongPin.StatusCode)
	s.Equal(fiber.StatusUnauthorized, unknown.StatusCode)
}

func (s *WebAPITestSuite) TestWithdrawInsufficientFunds() {
	s.register("alice", "1234")
	token, _ := s.login("alice", "1234")

	resp, _ := s.request(fiber.MethodPost, "/account/withdraw", token, fiber.Map{"amount": 10})
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, env := s.request(fiber.MethodGet, "/account/balance", token, nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var balance struct {
		Balance string `json:"balance"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &balance))
	s.Equal("0.00", balance.Balance)
}

func (s *WebAPITestSuite) TestDepositRejectsNonPositiveAmount() {
	s.register("alice", "1234")
	token, _ := s.login("alice", "1234")

	resp, _ := s.request(fiber.MethodPost, "/account/deposit", token, fiber.Map{"amount": -5})
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WebAPITestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/account/balance", "/account/transactions", "/account/series"} {
		resp, _ := s.request(fiber.MethodGet, path, "", nil)
		s.Equal(fiber.StatusUnauthorized, resp.StatusCode, path)
	}
	resp, _ := s.request(fiber.MethodPost, "/account/deposit", "", fiber.Map{"amount": 10})
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *WebAPITestSuite) TestResponsesCarryRequestID() {
	resp, _ := s.request(fiber.MethodGet, "/", "", nil)
	id := resp.Header.Get(fiber.HeaderXRequestID)
	s.Require().NotEmpty(id)
	_, err := uuid.Parse(id)
	s.NoError(err)

	resp, _ = s.request(fiber.MethodGet, "/", "", nil)
	s.NotEqual(id, resp.Header.Get(fiber.HeaderXRequestID))
}

func (s *WebAPITestSuite) TestHealthCheck() {
	resp, _ := s.request(fiber.MethodGet, "/", "", nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func TestWebAPITestSuite(t *testing.T) {
	suite.Run(t, new(WebAPITestSuite))
}
