package auth_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/auth"
	backendTest "github.com/pallium-care/console/backend/test"
)

var _ = Describe("Claims", func() {
	Describe("PeekClaims", func() {
		It("returns the subject and expiry", func() {
			claims, err := auth.PeekClaims(backendTest.NewToken("admin", time.Hour))
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.Subject).To(Equal("admin"))
			Expect(claims.ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), 2*time.Second))
		})

		It("rejects garbage", func() {
			_, err := auth.PeekClaims("not-a-token")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ClaimsCache", func() {
		var now time.Time
		var cache *auth.ClaimsCache

		BeforeEach(func() {
			now = time.Now()
			var err error
			cache, err = auth.NewClaimsCache(2, func() time.Time { return now })
			Expect(err).ToNot(HaveOccurred())
		})

		It("caches valid tokens", func() {
			token := backendTest.NewToken("vcm", time.Hour)
			_, err := cache.Claims(token)
			Expect(err).ToNot(HaveOccurred())
			Expect(cache.Len()).To(Equal(1))

			_, err = cache.Claims(token)
			Expect(err).ToNot(HaveOccurred())
			Expect(cache.Len()).To(Equal(1))
		})

		It("rejects expired tokens", func() {
			_, err := cache.Claims(backendTest.NewToken("vcm", -time.Minute))
			Expect(err).To(MatchError(auth.ErrTokenExpired))
			Expect(cache.Len()).To(Equal(0))
		})

		It("drops cached tokens once they expire", func() {
			token := backendTest.NewToken("vcm", time.Minute)
			_, err := cache.Claims(token)
			Expect(err).ToNot(HaveOccurred())

			now = now.Add(2 * time.Minute)
			_, err = cache.Claims(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
			Expect(cache.Len()).To(Equal(0))
		})

		It("evicts the least recently used token", func() {
			for _, subject := range []string{"a", "b", "c"} {
				_, err := cache.Claims(backendTest.NewToken(subject, time.Hour))
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(cache.Len()).To(Equal(2))
		})

		It("forgets tokens", func() {
			token := backendTest.NewToken("admin", time.Hour)
			_, err := cache.Claims(token)
			Expect(err).ToNot(HaveOccurred())
			cache.Forget(token)
			Expect(cache.Len()).To(Equal(0))
		})
	})
})
