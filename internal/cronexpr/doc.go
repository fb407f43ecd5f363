// Package cronexpr expands five-field cron expressions into explicit value sets.
//
// A line has the shape
//
//	<minute> <hour> <day-of-month> <month> <day-of-week> <command>
//
// Every field token is classified into exactly one syntax variant
// (wildcard, step, single, list or range) and expanded against the
// field's bounds. The command is kept verbatim.
//
// Bounds follow the historical behavior of the tool: a bare "*" in the hour
// field yields 0..24 and in the day-of-month field 1..30, while the step
// form ("*/N") uses 0..23 and 1..31 respectively. See Kind.WildcardBound and
// Kind.StepBound.
package cronexpr
