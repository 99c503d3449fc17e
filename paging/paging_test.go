package paging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/paging"
)

var _ = Describe("Pagination", func() {
	items := []int{1, 2, 3, 4, 5}

	It("reads the page from the query", func() {
		Expect(paging.FromQuery("3", 10)).To(Equal(paging.Pagination{Offset: 20, Limit: 10}))
		Expect(paging.FromQuery("abc", 10)).To(Equal(paging.Pagination{Offset: 0, Limit: 10}))
		Expect(paging.FromQuery("", 0).Limit).To(Equal(25))
	})

	It("slices the requested window", func() {
		page := paging.Apply(items, paging.Pagination{Offset: 2, Limit: 2})
		Expect(page.Items).To(Equal([]int{3, 4}))
		Expect(page.Number()).To(Equal(2))
		Expect(page.HasPrevious()).To(BeTrue())
		Expect(page.HasNext()).To(BeTrue())
	})

	It("returns the tail on the last page", func() {
		page := paging.Apply(items, paging.Pagination{Offset: 4, Limit: 2})
		Expect(page.Items).To(Equal([]int{5}))
		Expect(page.HasNext()).To(BeFalse())
	})

	It("returns an empty page past the end", func() {
		page := paging.Apply(items, paging.Pagination{Offset: 10, Limit: 2})
		Expect(page.Items).To(BeEmpty())
		Expect(page.Total).To(Equal(5))
	})

	It("sorts stably in both directions", func() {
		type pair struct{ k, v int }
		values := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}}
		paging.SortBy(values, paging.Sort{Ascending: true}, func(a, b pair) bool { return a.k < b.k })
		Expect(values).To(Equal([]pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}}))
		paging.SortBy(values, paging.Sort{Ascending: false}, func(a, b pair) bool { return a.k < b.k })
		Expect(values).To(Equal([]pair{{2, 0}, {2, 2}, {1, 1}, {1, 3}}))
	})
})
