// Package safety implements the report safety rule and its dampened
// variant.
//
// A report is safe under the strict rule when its levels are strictly
// monotonic in one fixed direction (chosen from the first two readings)
// and every adjacent pair differs by 1 to 3 inclusive. The dampener
// relaxes the rule: a report is safe with tolerance t when some
// order-preserving selection of len-t readings satisfies the strict rule.
//
// The dampened check enumerates choose-k index combinations, which is
// exponential in the tolerance. That is acceptable here because reports
// are short lines of sensor readings and tolerances are small; callers
// with long sequences or large tolerances should not use this package.
package safety
