package naming_test

import (
	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/naming"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Render", func() {
	var record naming.Record

	BeforeEach(func() {
		record = naming.Record{
			Fields: map[string]string{
				"brand": "Xiaomi",
				"model": "Redmi Note 14",
			},
			Specs: map[string]string{
				"ram":     "6GB",
				"storage": "256GB",
				"version": "",
			},
		}
	})

	It("drops the trailing artifact left by an empty value", func() {
		name := naming.Render("{model}, {ram}/{storage} - {version}", record)

		Expect(name).To(Equal("Redmi Note 14, 6GB/256GB"))
	})

	It("prefers specs values over top-level values", func() {
		record.Fields["ram"] = "4GB"

		name := naming.Render("{model} {ram}", record)

		Expect(name).To(Equal("Redmi Note 14 6GB"))
	})

	It("lets an empty specs entry shadow the top-level value", func() {
		record.Fields["version"] = "Global"

		name := naming.Render("{model} {version}", record)

		Expect(name).To(Equal("Redmi Note 14"))
	})

	It("falls back to top-level values when specs have none", func() {
		name := naming.Render("{brand} {model}", record)

		Expect(name).To(Equal("Xiaomi Redmi Note 14"))
	})

	It("resolves unknown tokens to empty without error", func() {
		name := naming.Render("{model} {no_such_token}", record)

		Expect(name).To(Equal("Redmi Note 14"))
	})

	It("removes parenthesis pairs emptied by missing values", func() {
		name := naming.Render("{model} ({color}) {storage}", record)

		Expect(name).To(Equal("Redmi Note 14 256GB"))
	})

	It("collapses doubled separators", func() {
		record.Specs["storage"] = ""

		name := naming.Render("{model}, {ram}, {storage}, {color}", record)

		Expect(name).To(Equal("Redmi Note 14, 6GB"))
	})
})

var _ = Describe("Cleanup", func() {
	DescribeTable("normalizes separator artifacts",
		func(input, expected string) {
			Expect(naming.Cleanup(input)).To(Equal(expected))
		},
		Entry("doubled commas", "a,,b", "a,b"),
		Entry("doubled slashes", "a//b", "a/b"),
		Entry("doubled hyphens", "a--b", "a-b"),
		Entry("empty parens", "a () b", "a b"),
		Entry("trailing comma", "a, b,", "a, b"),
		Entry("leading comma", ", a b", "a b"),
		Entry("comma then hyphen", "a,-b", "a - b"),
		Entry("hyphen then comma", "a-,b", "a,b"),
		Entry("slash then hyphen", "a/-b", "a - b"),
		Entry("hyphen then slash", "a-/b", "a/b"),
		Entry("whitespace runs", "a   b\tc", "a b c"),
	)

	It("is idempotent on arbitrary template outputs", func() {
		inputs := []string{
			"Redmi Note 14, 6GB/256GB - ",
			"a,,-b () /- c",
			", - / ",
			"a, / - b",
			"()--,,//",
		}

		for _, input := range inputs {
			once := naming.Cleanup(input)
			Expect(naming.Cleanup(once)).To(Equal(once))
		}
	})
})

var _ = Describe("JoinFields", func() {
	var record naming.Record

	BeforeEach(func() {
		record = naming.Record{
			Fields: map[string]string{"model": "Redmi Note 14", "color": ""},
			Specs:  map[string]string{"ram": "6GB"},
		}
	})

	It("joins resolved non-empty values with the separator", func() {
		name := naming.JoinFields([]string{"model", "color", "ram"}, " - ", record)

		Expect(name).To(Equal("Redmi Note 14 - 6GB"))
	})

	It("defaults the separator to a single space", func() {
		name := naming.JoinFields([]string{"model", "ram"}, "", record)

		Expect(name).To(Equal("Redmi Note 14 6GB"))
	})
})

var _ = Describe("Generate", func() {
	var record naming.Record

	BeforeEach(func() {
		record = naming.Record{
			Fields: map[string]string{"model": "Redmi Note 14"},
			Specs:  map[string]string{"ram": "6GB", "storage": "256GB"},
		}
	})

	It("prefers the template path", func() {
		cfg := domain.CategoryConfig{
			AutoNameTemplate: "{model}, {ram}/{storage}",
			AutoNameFields:   []string{"model"},
		}

		Expect(naming.Generate(cfg, record)).To(Equal("Redmi Note 14, 6GB/256GB"))
	})

	It("falls back to the deprecated fields path", func() {
		cfg := domain.CategoryConfig{
			AutoNameFields:    []string{"model", "ram"},
			AutoNameSeparator: " / ",
		}

		Expect(naming.Generate(cfg, record)).To(Equal("Redmi Note 14 / 6GB"))
	})

	It("returns empty when nothing is configured", func() {
		Expect(naming.Generate(domain.CategoryConfig{}, record)).To(BeEmpty())
	})
})
