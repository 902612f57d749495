package utils_test

import (
	"time"

	"github.com/aljvdi/authoria-dns-lib/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("util", func() {
	var (
		create time.Time
	)

	BeforeEach(func() {
		create, _ = time.Parse("2006-01-02 15:04:05", "2017-12-03 22:01:02")
	})

	Describe("convert expire time", func() {
		It("convert expire time should correctly", func() {
			Expect(utils.ConvertExpire(create, 300).UnixNano()).To(Equal(int64(1512338762000000000)))
		})
	})
})
