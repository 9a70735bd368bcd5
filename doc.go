/*
Package rcut cuts selected parts out of each record of a text or binary
stream. A record is everything up to a terminator byte, which is newline
by default or NUL. Each record is split into tokens, and a range list
selects the tokens that are written out again, joined by a joiner.

Records are split into one of three kinds of tokens, called the mode:

	fields      parts between delimiters, or between runs of white space
	bytes       every single byte
	characters  every Unicode code point, optionally every grapheme cluster

With an explicit delimiter, fields are separated by each non-overlapping
occurrence of the delimiter, scanning from the left. A delimiter at the end
of a record closes an empty last field. Without a delimiter, the record
must be valid UTF-8 and fields are the non-empty parts between white space.

# Range Lists

A range list is a comma-separated list of ranges. Positions start at 1:

	N    the N-th token
	A-B  tokens A through B
	A-   token A through the last token
	-B   the first token through token B
	-    all tokens
	~    all tokens, last one first

If A is greater than B, the tokens B through A are selected in reverse
order, i.e.

	4-2

selects the tokens 4, 3 and 2 in this order. Ranges that reach beyond the
end of a record are clamped to the record. A range that starts after the
last token selects nothing.

The selected tokens of all ranges are output in the order of the range
list. Ranges may overlap and tokens may be selected more than once:

	2,1-3

selects the fields b, a, b and c of the record "a b c".

# Complement

In complement mode every token that is not covered by any range is output
in its original order. Here, overlapping ranges and reverse ranges make no
difference:

	--complement -f 2,4

selects the fields a and c of the record "a b c d".

# Joiner

Selected tokens are joined with the explicit joiner, if one is configured.
Otherwise the delimiter is used. Without both, fields are joined with TAB
and bytes or characters are joined with nothing.

# Skipped Records

Splitting at white space and splitting into characters require valid
UTF-8. Records that are not are skipped and reported, processing continues
with the next record. In fields mode one can also drop all records that
contain no delimiter at all.
*/
package rcut
