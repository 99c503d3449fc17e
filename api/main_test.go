package api_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/pallium-care/console/api"
	backendTest "github.com/pallium-care/console/backend/test"
)

var _ = Describe("Dependencies", func() {
	It("wires the console server from the environment", func() {
		stub := backendTest.ServerStub()
		DeferCleanup(stub.Close)

		t := GinkgoT()
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("CONSOLE_API_BASE_URL", stub.URL)

		var server *echo.Echo
		deps := append(api.Dependencies(), fx.Invoke(api.SetReady), fx.Populate(&server))
		app := fxtest.New(t, deps...)
		app.RequireStart()
		DeferCleanup(app.RequireStop)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("refuses an invalid configuration", func() {
		GinkgoT().Setenv("CONSOLE_API_BASE_URL", "http://localhost:1")
		GinkgoT().Setenv("CONSOLE_PAGE_SIZE", "0")
		app := fx.New(append(api.Dependencies(), fx.Invoke(func(*echo.Echo) {}), fx.NopLogger)...)
		Expect(app.Err()).To(HaveOccurred())
	})
})
