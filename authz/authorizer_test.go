package authz_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/pallium-care/console/authz"
)

var _ = Describe("Request Authorizer", func() {
	var authorizer authz.RequestAuthorizer

	BeforeEach(func() {
		var err error
		authorizer, err = authz.NewRequestAuthorizer(zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	authorize := func(role, method, path string) error {
		return authorizer.Authorize(context.Background(), authz.Input{
			Role:   role,
			Method: method,
			Path:   authz.SplitPath(path),
		})
	}

	DescribeTable("admins",
		func(method, path string) {
			Expect(authorize("admin", method, path)).To(Succeed())
		},
		Entry("see the dashboard", "GET", "/"),
		Entry("list patients", "GET", "/patients"),
		Entry("delete patients", "POST", "/patients/abc/delete"),
		Entry("export the emergency fund", "GET", "/emergency-fund/export.xlsx"),
	)

	DescribeTable("vcm members are allowed to",
		func(method, path string) {
			Expect(authorize("vcm", method, path)).To(Succeed())
		},
		Entry("see the dashboard", "GET", "/"),
		Entry("see schedules", "GET", "/schedules"),
		Entry("see tasks", "GET", "/tasks"),
		Entry("see assignments", "GET", "/assignments"),
		Entry("change task status", "POST", "/tasks/abc/status"),
	)

	DescribeTable("vcm members are not allowed to",
		func(method, path string) {
			Expect(authorize("vcm", method, path)).To(Equal(authz.ErrUnauthorized))
		},
		Entry("list patients", "GET", "/patients"),
		Entry("create schedules", "POST", "/schedules"),
		Entry("delete tasks", "POST", "/tasks/abc/delete"),
		Entry("edit tasks", "POST", "/tasks/abc"),
		Entry("export anything", "GET", "/tasks/export.xlsx"),
		Entry("see the emergency fund", "GET", "/emergency-fund"),
	)

	DescribeTable("anonymous users",
		func(method, path string, allowed bool) {
			err := authorize("", method, path)
			if allowed {
				Expect(err).ToNot(HaveOccurred())
			} else {
				Expect(err).To(Equal(authz.ErrUnauthorized))
			}
		},
		Entry("may log in", "POST", "/login", true),
		Entry("may log in as vcm", "GET", "/vcm/login", true),
		Entry("may register", "POST", "/register", true),
		Entry("may donate", "GET", "/donate", true),
		Entry("may not see the dashboard", "GET", "/", false),
		Entry("may not see volunteers", "GET", "/volunteers", false),
		Entry("may not see other vcm pages", "GET", "/vcm/members", false),
	)

	It("evaluates raw inputs", func() {
		input := map[string]interface{}{
			"role":   "vcm",
			"method": "GET",
			"path":   []string{"schedules"},
		}
		Expect(authorizer.EvaluatePolicy(context.Background(), input)).To(Succeed())
	})
})
