// Package score aggregates sub-scores into ranked records.
//
// The flow for a run is:
//
//	urls, err := score.ReadURLFile(path)     // fatal on a malformed line
//	records, err := engine.Score(ctx, urls)  // misses dropped, failures zeroed
//	score.Rank(records)                      // net score, highest first
//	score.Render(os.Stdout, records)         // one JSON object per line
//
// [Engine] scores URLs concurrently with a bounded worker group and gives
// each URL its own timeout. Results are collected by input index, so output
// is deterministic regardless of completion order.
//
// # Net Score
//
// The net score is a fixed weighted sum: license 0.50, responsiveness 0.25,
// correctness 0.10, bus factor 0.10, ramp-up 0.05.
package score
