package jsonwire

import (
	"math"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type timeValue struct{}

// Time returns the codec for timestamp members. Values are written as epoch
// seconds truncated to millisecond precision and are always read back in UTC,
// so a timestamp round-trips exactly only when it is in UTC and carries no
// sub-millisecond part.
func Time() Value[*time.Time] { return timeValue{} }

func (timeValue) absent(v *time.Time) bool { return v == nil }

func (timeValue) write(s *jsoniter.Stream, v *time.Time) {
	s.WriteFloat64(epochSeconds(*v))
}

func (timeValue) read(it *jsoniter.Iterator) *time.Time {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.Skip()
		return nil
	case jsoniter.NumberValue:
		t := fromEpochSeconds(it.ReadFloat64())
		return &t
	case jsoniter.StringValue:
		raw := it.ReadString()
		t, err := ParseTime(raw)
		if err != nil {
			it.ReportError("read timestamp", err.Error())
			return nil
		}
		return &t
	default:
		it.ReportError("read timestamp", "expect number or string")
		return nil
	}
}

func (timeValue) format(v *time.Time) (string, bool) {
	return v.UTC().Format(time.RFC3339), true
}

// ParseTime parses a timestamp as services send it: epoch seconds,
// optionally fractional, or an RFC 3339 date-time.
func ParseTime(raw string) (time.Time, error) {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return fromEpochSeconds(f), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

func fromEpochSeconds(f float64) time.Time {
	return time.UnixMilli(int64(math.Round(f * 1000))).UTC()
}
