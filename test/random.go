package test

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// RandomPhone returns a ten digit mobile number starting with 6-9.
func RandomPhone() string {
	return fmt.Sprintf("%d%09d", 6+Rand.Intn(4), Rand.Intn(1_000_000_000))
}

// RandomId returns a hex id shaped like the backend's record ids.
func RandomId() string {
	return fmt.Sprintf("%024x", Rand.Uint64())
}

func RandomLicense() string {
	return fmt.Sprintf("%s%08d", Faker.RandomStringElement([]string{"KL", "TN", "MH", "KAR"}), Rand.Intn(100_000_000))
}
