// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/rewards-hub/backend/internal/application/usecase/user"
	"github.com/rewards-hub/backend/internal/infra/server/router"
	"github.com/rewards-hub/backend/internal/integration/adapters"
	"github.com/rewards-hub/backend/internal/integration/entrypoint/controller"
	"github.com/rewards-hub/backend/internal/integration/persistence"
	"github.com/rewards-hub/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// ID of the most recently registered user, captured for the
	// change-password scenarios.
	lastUserID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db, err := mock.NewDB()
		if err != nil {
			return ctx, fmt.Errorf("failed to create test database: %w", err)
		}

		userRepo := persistence.NewUserRepository(db)
		passwordService := adapters.NewPasswordService()

		userController := controller.NewUserController(
			user.NewCreateUserUseCase(userRepo, passwordService),
			user.NewAuthenticateUserUseCase(userRepo, passwordService),
			user.NewChangePasswordUseCase(userRepo, passwordService),
		)
		healthController := controller.NewHealthController(func() bool { return true })

		r := router.NewRouter(healthController, userController)
		engine := r.Setup("test")

		tc := &TestContext{
			server: httptest.NewServer(engine),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^a user is registered with:$`, aUserIsRegisteredWith)
	ctx.Step(`^I change the password of the registered user with current password "([^"]*)" and new password "([^"]*)"$`, iChangeThePasswordOfTheRegisteredUser)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, theResponseFieldShouldNotExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return doRequest(ctx, method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return doRequest(ctx, method, path, []byte(body.Content))
}

// aUserIsRegisteredWith seeds a user through the real register endpoint and
// captures its ID for later steps.
func aUserIsRegisteredWith(ctx context.Context, body *godog.DocString) error {
	if err := doRequest(ctx, http.MethodPost, "/user/register", []byte(body.Content)); err != nil {
		return err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("seed registration failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := lookupField(tc.responseBody, "user.id")
	if err != nil {
		return fmt.Errorf("seed registration response has no user id: %w", err)
	}
	tc.lastUserID = fmt.Sprintf("%v", id)
	return nil
}

func iChangeThePasswordOfTheRegisteredUser(ctx context.Context, current, newPassword string) error {
	tc := GetTestContext(ctx)
	if tc.lastUserID == "" {
		return fmt.Errorf("no registered user in this scenario")
	}

	body, err := json.Marshal(map[string]string{
		"user_id":          tc.lastUserID,
		"current_password": current,
		"new_password":     newPassword,
	})
	if err != nil {
		return err
	}
	return doRequest(ctx, http.MethodPost, "/user/change-password", body)
}

func doRequest(ctx context.Context, method, path string, body []byte) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}

	req, err := http.NewRequest(method, tc.server.URL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.response = resp
	tc.responseBody = responseBody
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q is %q, expected %q", field, actual, expected)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if _, err := lookupField(tc.responseBody, field); err != nil {
		return err
	}
	return nil
}

func theResponseFieldShouldNotExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if _, err := lookupField(tc.responseBody, field); err == nil {
		return fmt.Errorf("field %q exists but should not", field)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), substring) {
		return fmt.Errorf("response %q does not contain %q", tc.responseBody, substring)
	}
	return nil
}

// lookupField resolves a dot-separated path in the JSON response body.
func lookupField(body []byte, path string) (any, error) {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	var current any = parsed
	for _, part := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in path %q", part, path)
		}
		value, exists := object[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found in path %q", part, path)
		}
		current = value
	}
	return current, nil
}
