// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package jsontree_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/hakohakoo/jsontree"
)

// benchInput builds a JSON document of n records using only constructs both
// the scanner and encoding/json accept: escape-free strings and unsigned
// numbers.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"episodes": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"episode": %d, "airDate": "2020.%d.%d", "summary": "whatever blah blah %d", "hasDetail": %v, "guests": [%d, %d.5, null]}`,
			i, 1+i%12, 1+i%28, i, i%2 == 0, i, i)
	}
	sb.WriteString("]}")
	return sb.String()
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput(500)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader([]byte(input)))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := jsontree.NewScanner(strings.NewReader(input))
			for s.Next() {
			}
			if s.Err() != nil {
				b.Fatalf("Unexpected error: %v", s.Err())
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jsontree.Tokenize(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
