package authz

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/structs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.uber.org/zap"

	"github.com/pallium-care/console/auth"
	errs "github.com/pallium-care/console/errors"
)

var (
	//go:embed policy.rego
	authzPolicy string

	ErrUnauthorized = errors.New("the subject is not authorized for the requested action")
)

type Input struct {
	Role   string   `json:"role"`
	Method string   `json:"method"`
	Path   []string `json:"path"`
}

type RequestAuthorizer interface {
	Authorize(ctx context.Context, input Input) error
	EvaluatePolicy(context.Context, map[string]interface{}) error
}

func NewRequestAuthorizer(logger *zap.SugaredLogger) (RequestAuthorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": authzPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		logger: logger,
		policy: compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	logger *zap.SugaredLogger
	policy *ast.Compiler
}

func (e *embeddedOpaAuthorizer) Authorize(ctx context.Context, input Input) error {
	if input.Path == nil {
		input.Path = []string{}
	}
	s := structs.New(input)
	s.TagName = "json"
	return e.EvaluatePolicy(ctx, s.Map())
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, input map[string]interface{}) error {
	r := rego.New(
		rego.Package("http.authz.console"),
		rego.Query("allow"),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("authorization policy eval", zap.Any("input", input), zap.Bool("allow", val))

	if !val {
		return ErrUnauthorized
	}

	return nil
}

// SplitPath returns the non empty segments of path.
func SplitPath(path string) []string {
	segments := make([]string, 0)
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// NewAuthorizationMiddleware checks the session's role against the policy.
func NewAuthorizationMiddleware(authorizer RequestAuthorizer, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			input := Input{
				Method: strings.ToUpper(c.Request().Method),
				Path:   SplitPath(c.Request().URL.Path),
			}
			if session := auth.GetSession(c.Request().Context()); session != nil {
				input.Role = string(session.Role)
			}

			err := authorizer.Authorize(c.Request().Context(), input)
			if errors.Is(err, ErrUnauthorized) {
				return fmt.Errorf("%w: %s %s", errs.Forbidden, input.Method, c.Request().URL.Path)
			} else if err != nil {
				return err
			}
			return next(c)
		}
	}
}
