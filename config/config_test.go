package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/config"
)

var _ = Describe("Config", func() {
	It("loads defaults from the environment", func() {
		cfg, err := config.NewConfig()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.HttpPort).To(Equal(uint16(8080)))
		Expect(cfg.ListenAddress()).To(Equal(":8080"))
		Expect(cfg.UpiHandle).ToNot(BeEmpty())
		Expect(cfg.PageSize).To(Equal(25))
	})

	It("reads overrides", func() {
		t := GinkgoT()
		t.Setenv("CONSOLE_HTTP_PORT", "9090")
		t.Setenv("CONSOLE_UPI_HANDLE", "fund@okaxis")
		t.Setenv("CONSOLE_SECURE_COOKIES", "true")

		cfg, err := config.NewConfig()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ListenAddress()).To(Equal(":9090"))
		Expect(cfg.UpiHandle).To(Equal("fund@okaxis"))
		Expect(cfg.SecureCookies).To(BeTrue())
	})

	It("rejects a non positive page size", func() {
		GinkgoT().Setenv("CONSOLE_PAGE_SIZE", "0")
		_, err := config.NewConfig()
		Expect(err).To(MatchError(ContainSubstring("CONSOLE_PAGE_SIZE")))
	})
})
