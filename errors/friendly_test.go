package errors_test

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/pallium-care/console/errors"
)

var _ = Describe("FriendlyMessage", func() {
	DescribeTable("duplicate resources",
		func(backendMessage string, expected string) {
			err := fmt.Errorf("%w: %s", errs.Duplicate, backendMessage)
			Expect(errs.FriendlyMessage(err)).To(Equal(expected))
		},
		Entry("phone number", "Phone number already registered", "A record with this phone number already exists."),
		Entry("email", "duplicate key error: email_1", "A record with this email address already exists."),
		Entry("license", "License number exists", "A medical professional with this license number already exists."),
		Entry("anything else", "already exists", "This record already exists."),
	)

	It("returns an empty string without an error", func() {
		Expect(errs.FriendlyMessage(nil)).To(BeEmpty())
	})

	It("passes through client error messages from the backend", func() {
		err := fmt.Errorf("%w: %s", errs.FromStatus(http.StatusBadRequest), "Age must be a number")
		Expect(errs.FriendlyMessage(err)).To(Equal("Age must be a number"))
	})

	It("hides server error details", func() {
		err := fmt.Errorf("%w: %s", errs.FromStatus(http.StatusInternalServerError), "stack trace")
		Expect(errs.FriendlyMessage(err)).To(Equal("Something went wrong. Please try again."))
	})

	It("explains expired sessions", func() {
		err := fmt.Errorf("%w: jwt expired", errs.Unauthorized)
		Expect(errs.FriendlyMessage(err)).To(ContainSubstring("log in again"))
	})
})

var _ = Describe("StatusCode", func() {
	It("returns the status carried by a wrapped error", func() {
		err := fmt.Errorf("patient %w", errs.NotFound)
		Expect(errs.StatusCode(err)).To(Equal(http.StatusNotFound))
	})

	It("defaults to internal server error", func() {
		Expect(errs.StatusCode(fmt.Errorf("boom"))).To(Equal(http.StatusInternalServerError))
	})

	It("maps unprocessable entity to bad request", func() {
		Expect(errs.FromStatus(http.StatusUnprocessableEntity)).To(Equal(errs.BadRequest))
	})
})
