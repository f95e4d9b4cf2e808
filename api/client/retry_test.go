package client

import (
	"errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backoff policy", func() {
	serverErr := APIError{Status: http.StatusInternalServerError, Message: "boom"}
	errTransport := errors.New("connection refused")

	It("should double the delay with every attempt", func() {
		policy := Backoff(4)
		Expect(policy(0, serverErr)).To(Equal(Retry(1 * time.Second)))
		Expect(policy(1, serverErr)).To(Equal(Retry(2 * time.Second)))
		Expect(policy(2, serverErr)).To(Equal(Retry(4 * time.Second)))
		Expect(policy(3, serverErr)).To(Equal(Fail()))
	})

	It("should fail immediately on an unauthorized error", func() {
		policy := Backoff(4)
		Expect(policy(0, UnauthorizedError{})).To(Equal(Fail()))
	})

	It("should fail on the first error with a single attempt budget", func() {
		policy := Backoff(1)
		Expect(policy(0, serverErr)).To(Equal(Fail()))
	})

	It("should retry transport errors like server errors", func() {
		policy := Backoff(2)
		Expect(policy(0, errTransport)).To(Equal(Retry(1 * time.Second)))
		Expect(policy(1, errTransport)).To(Equal(Fail()))
	})
})
