package utils_test

import (
	"net"

	"github.com/aljvdi/authoria-dns-lib/utils"

	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("dns names", func() {
	var (
		domains []string
		texts   []string
	)

	BeforeEach(func() {
		domains = []string{
			"example.com",
			"example.com.",
			"EXAMPLE.COM",
			"EXAMPLE.COM.",
		}
		texts = []string{
			"authoria-verification-token",
		}
	})

	Describe("get dns name", func() {
		It("get dns name should correctly", func() {
			for _, d := range domains {
				Expect(utils.GetDNSName(d)).To(Equal("example.com"))
			}
		})
	})

	Describe("ensure trailing dot", func() {
		It("ensure trailing dot should correctly", func() {
			for _, d := range domains {
				Expect(utils.EnsureTrailingDot(utils.GetDNSName(d))).To(Equal("example.com."))
			}
		})
	})

	Describe("text with quotes", func() {
		It("text with quotes should correctly", func() {
			for _, t := range texts {
				Expect(utils.TextWithQuotes(t)).To(Equal("\"authoria-verification-token\""))
				Expect(utils.TextRemoveQuotes(utils.TextWithQuotes(t))).To(Equal(t))
			}
		})
	})
})

var _ = Describe("txt lookup", func() {
	var (
		server *dns.Server
		addr   string
	)

	BeforeEach(func() {
		pc, err := net.ListenPacket("udp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr = pc.LocalAddr().String()

		mux := dns.NewServeMux()
		mux.HandleFunc("example.test.", func(w dns.ResponseWriter, r *dns.Msg) {
			m := new(dns.Msg)
			m.SetReply(r)
			rr, err := dns.NewRR(`example.test. 300 IN TXT "authoria-verification-token"`)
			if err == nil {
				m.Answer = append(m.Answer, rr)
			}
			_ = w.WriteMsg(m)
		})
		mux.HandleFunc("empty.test.", func(w dns.ResponseWriter, r *dns.Msg) {
			m := new(dns.Msg)
			m.SetReply(r)
			_ = w.WriteMsg(m)
		})

		server = &dns.Server{PacketConn: pc, Handler: mux}
		go func() {
			_ = server.ActivateAndServe()
		}()
	})

	AfterEach(func() {
		_ = server.Shutdown()
	})

	Describe("lookup txt", func() {
		It("lookup txt should correctly", func() {
			values, err := utils.LookupTXT("example.test", addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(ConsistOf("authoria-verification-token"))
		})

		It("lookup txt should handle empty answers", func() {
			values, err := utils.LookupTXT("empty.test", addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(BeEmpty())
		})
	})

	Describe("has txt value", func() {
		It("has txt value should find published tokens", func() {
			found, err := utils.HasTXTValue("example.test", "authoria-verification-token", addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
		})

		It("has txt value should miss unpublished tokens", func() {
			found, err := utils.HasTXTValue("example.test", "some-other-token", addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})
