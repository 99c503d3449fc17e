package notes_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/notes"
)

var _ = Describe("ParseLines", func() {
	It("splits each line on the first colon", func() {
		lines := notes.ParseLines("BP: 130/80\nTime: 10:30 AM\n")
		Expect(lines).To(Equal([]notes.Line{
			{Label: "BP", Value: "130/80"},
			{Label: "Time", Value: "10:30 AM"},
		}))
	})

	It("keeps lines without a colon as plain values", func() {
		lines := notes.ParseLines("Patient resting comfortably")
		Expect(lines).To(HaveLen(1))
		Expect(lines[0].HasLabel()).To(BeFalse())
		Expect(lines[0].Value).To(Equal("Patient resting comfortably"))
	})

	It("drops blank lines and handles windows line endings", func() {
		lines := notes.ParseLines("\r\nPain: mild\r\n   \r\nSleeps well\r\n")
		Expect(lines).To(Equal([]notes.Line{
			{Label: "Pain", Value: "mild"},
			{Value: "Sleeps well"},
		}))
	})

	It("returns an empty list for empty text", func() {
		Expect(notes.ParseLines("")).To(BeEmpty())
	})

	It("formats lines back to text", func() {
		text := "Pain: mild\nSleeps well"
		Expect(notes.Format(notes.ParseLines(text))).To(Equal(text))
	})
})
