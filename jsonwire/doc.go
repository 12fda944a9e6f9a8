// Package jsonwire provides the JSON encoding and decoding used by every AWS service client in this module.
//
// # Records and schemas
//
// A record is a plain Go struct whose members are nilable: scalar members are pointers
// (*string, *int64, *float64, *bool, *time.Time), blobs are []byte, nested records are
// pointers to other records, and collections are slices or string-keyed maps.
// A nil member means the member is absent.
//
// Each record type has exactly one [Schema], declared once at package initialization:
//
//	var algorithmSummarySchema = jsonwire.NewSchema("AlgorithmSummary",
//		jsonwire.Field("AlgorithmName", func(r *AlgorithmSummary) **string { return &r.AlgorithmName }, jsonwire.String()),
//		jsonwire.Field("CreationTime", func(r *AlgorithmSummary) **time.Time { return &r.CreationTime }, jsonwire.Time()),
//	)
//
// The schema is an ordered list of members. Each member pairs the exact, case-sensitive
// wire key with an accessor and a [Value] codec. No reflection is used to walk struct
// fields; the accessor is the only way the codec reaches a member.
//
// # Wire rules
//
//   - Members are written in schema order.
//   - Absent (nil) members are omitted. Explicit nulls are never written.
//   - Nil list elements and nil map values are skipped.
//   - Map entries are written in key order so output is deterministic.
//   - Unknown keys are skipped while decoding.
//   - A non-object token where a record is expected decodes to an absent (nil) record.
//   - Timestamps are written as epoch seconds truncated to millisecond precision.
//     They are read from numbers, numeric strings or RFC 3339 strings, always in UTC.
//   - Blobs are base64 strings.
//   - A document that ends early, or is followed by anything but whitespace,
//     fails to decode and leaves the destination untouched.
//
// The token stream is provided by github.com/json-iterator/go.
//
// # Registry
//
// [NewSchema] registers the schema in a process-wide lookup table keyed by the record type,
// which is what lets [Codec] marshal and unmarshal `any` values.
package jsonwire
