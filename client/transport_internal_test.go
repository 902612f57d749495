package client

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("send contract", func() {
	var c *Client

	BeforeEach(func() {
		c = &Client{
			baseURL: "http://127.0.0.1:1/api/v1",
			http:    resty.New(),
		}
	})

	Describe("method guard", func() {
		It("rejects unsupported methods before sending", func() {
			for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodHead, "BOGUS"} {
				_, _, err := c.send(method, "/new", nil, false)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("unsupported method"))
			}
		})
	})

	Describe("form data guard", func() {
		It("rejects non-map form payloads before sending", func() {
			_, _, err := c.send(http.MethodPost, "/new", []string{"nope"}, false)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("form data must be map[string]string"))
		})
	})
})

var _ = Describe("truthy handshake values", func() {
	It("accepts truthy values and rejects the rest", func() {
		Expect(truthy(true)).To(BeTrue())
		Expect(truthy("yes")).To(BeTrue())
		Expect(truthy(float64(1))).To(BeTrue())
		Expect(truthy(map[string]interface{}{})).To(BeTrue())

		Expect(truthy(nil)).To(BeFalse())
		Expect(truthy(false)).To(BeFalse())
		Expect(truthy("")).To(BeFalse())
		Expect(truthy(float64(0))).To(BeFalse())
	})
})
