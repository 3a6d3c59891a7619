package embed

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestExtractHeader(t *testing.T) {
	a, err := Extract([]byte(irHeader))
	if err != nil {
		t.Fatalf("extracting: %+v", err)
	}

	if a.Source != "hot_loop.ll" || a.Name != "hot_loop_ir" || a.Delimiter != "RUFUS_f4e1c444" {
		t.Fatalf("unexpected artifact %+v", a)
	}

	if string(a.Content) != irContent {
		t.Fatalf("expected content %q, got %q", irContent, a.Content)
	}
}

func TestExtractMalformed(t *testing.T) {
	cases := []string{
		"",
		"#pragma once\n",
		"// Auto-generated from x\n#pragma once\n",
		"// Auto-generated from x\ninline const char* v = \"quoted\";\n",
		"// Auto-generated from x\ninline const char* v = R\"D(\nunterminated\n",
		"// Auto-generated from x\ninline const char* v = R\"D(\nwrong\n)E\";\n",
		"// Code generated by rufus-embed from x. DO NOT EDIT.\n\npackage p\n\nconst V = 1\n",
		"// Code generated by rufus-embed from x. DO NOT EDIT.\n\npackage p\n\nconst V = \"unterminated\n",
	}

	for i, data := range cases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			_, err := Extract([]byte(data))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected %v, got %+v", ErrMalformed, err)
			}
		})
	}
}
