// Package writers turns a finished report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (banners, JSON/JSONL).
//   - report stays presentation-free; sequence stays domain-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
