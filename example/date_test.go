package main

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("example", func() {
	Describe("ParseDate()", func() {
		Context("when given a valid date string", func() {
			DescribeTable("should parse to a time.", func(input string, loc *time.Location, expected time.Time) {
				got, err := ParseDate(input, loc)
				Expect(err).To(Succeed())
				Expect(*got).To(BeTemporally("==", expected))
			},
				Entry("YYYYMMDD", "20191001", nil,
					time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC)),
				Entry("YYYYMMDD in a location", "20191001", time.FixedZone("TTT", -11*60*60),
					time.Date(2019, 10, 1, 0, 0, 0, 0, time.FixedZone("TTT", -11*60*60))),
				Entry("YYYYMMDDHHMMSS", "20171108090000", nil,
					time.Date(2017, 11, 8, 9, 0, 0, 0, time.UTC)),
				Entry("YYYYMMDDHHMMSS.XXX[gmt offset:tz name]", "20170226120000.000[0:GMT]", nil,
					time.Date(2017, 2, 26, 12, 0, 0, 0, time.UTC)),
				Entry("negative offset", "20180313093000.000[-5:EST]", nil,
					time.Date(2018, 3, 13, 14, 30, 0, 0, time.UTC)),
				Entry("fractional offset without name", "20190101120000[+5.5]", nil,
					time.Date(2019, 1, 1, 6, 30, 0, 0, time.UTC)),
			)
		})
		Context("when given a invalid date string", func() {
			DescribeTable("should return an error.", func(input string) {
				got, err := ParseDate(input, nil)
				Expect(got).To(BeNil())
				Expect(err).To(MatchError("error - date string can not be parsed"))
			},
				Entry("Empty", ""),
				Entry("Invalid text", "test"),
				Entry("Invalid format", "2019/01/02"),
				Entry("Missing month and date", "2019"),
				Entry("Missing date", "2019-01"),
			)
		})
	})
})
