package contextio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lbrehon/galois/bitvec"
)

// SaveBal writes a list of equal-width bit vectors in .bal form: the ASCII
// decimal width, a 'n' separator, then each vector packed big-endian and
// padded to whole bytes.
func SaveBal(w io.Writer, vectors []bitvec.Vector) error {
	if len(vectors) == 0 {
		return ErrEmptyInput
	}
	width := vectors[0].Width()
	if _, err := fmt.Fprintf(w, "%dn", width); err != nil {
		return err
	}
	for i, v := range vectors {
		if v.Width() != width {
			return fmt.Errorf("%w: vector %d has width %d, want %d", ErrRaggedRows, i, v.Width(), width)
		}
		if _, err := w.Write(packBits(v)); err != nil {
			return err
		}
	}
	return nil
}

// LoadBal reads a .bal stream back into a list of bit vectors.
func LoadBal(r io.Reader) ([]bitvec.Vector, error) {
	br := bufio.NewReader(r)

	var header []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: unterminated width header", ErrBadFormat)
		}
		if b == 'n' {
			break
		}
		header = append(header, b)
	}
	width, err := strconv.Atoi(string(header))
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: bad width header %q", ErrBadFormat, header)
	}

	chunk := make([]byte, (width+7)/8)
	var out []bitvec.Vector
	for {
		_, err := io.ReadFull(br, chunk)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: truncated vector %d", ErrBadFormat, len(out))
		}
		out = append(out, unpackBits(chunk, width))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no vectors after header", ErrBadFormat)
	}
	return out, nil
}

// packBits serialises a vector big-endian: bit i lands in the high end of
// byte i/8.
func packBits(v bitvec.Vector) []byte {
	buf := make([]byte, (v.Width()+7)/8)
	v.ForEach(func(i int) bool {
		buf[i/8] |= 1 << (7 - uint(i%8))
		return true
	})
	return buf
}

func unpackBits(buf []byte, width int) bitvec.Vector {
	v := bitvec.New(width)
	for i := 0; i < width; i++ {
		if buf[i/8]&(1<<(7-uint(i%8))) != 0 {
			_ = v.Set(i)
		}
	}
	return v
}
