// Package stones counts engraved stones that change every time you blink:
//
//   - 0 becomes 1;
//   - a number with an even count of digits splits into its left and right
//     halves (leading zeros dropped);
//   - anything else is multiplied by 2024.
//
// Order never matters for the count, so each stone is solved independently
// and the result for (stone, blinks left) is memoized. The number of distinct
// keys stays small even when the stone count grows exponentially.
package stones
