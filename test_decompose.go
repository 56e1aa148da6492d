//go:build ignore
// +build ignore

package main

import (
	"fmt"

	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/service"
	"go.uber.org/zap"
)

// Quick manual poke at the name decomposer. Run with:
//
//	go run test_decompose.go
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	decomposer := service.NewNameDecomposer(logger)

	samples := []struct {
		label  string
		markup string
		flat   string
		alt    string
	}{
		{
			label:  "plain",
			markup: `John <span class="SURN">Doe</span>`,
			flat:   "John Doe",
		},
		{
			label:  "nickname and starred",
			markup: `Johannes <span class="starredname">Hans</span> <q class="wt-nickname">Hansi</q> <span class="SURN">Muster</span>`,
			flat:   "Johannes Hans Muster",
		},
		{
			label:  "hebrew alternate",
			markup: `Moshe <span class="SURN">Levi</span>`,
			flat:   "Moshe Levi",
			alt:    `<span class="NAME">משה לוי</span>`,
		},
		{
			label:  "placeholders only",
			markup: ``,
			flat:   "@P.N. @N.N.",
		},
	}

	for _, s := range samples {
		parts := decomposer.Decompose(s.markup, s.flat, s.alt)
		fmt.Printf("--- %s\n", s.label)
		fmt.Printf("  first: %v\n", parts.FirstNames)
		fmt.Printf("  last:  %v\n", parts.LastNames)
		fmt.Printf("  pref:  %q\n", parts.PreferredName)
		fmt.Printf("  alt:   %v (rtl=%v)\n", parts.AlternativeNames, parts.IsAlternativeRtl)
		fmt.Printf("  disp:  %q\n", parts.DisplayName)
	}

	fmt.Println("--- timespans")
	fmt.Println(service.TimespanLabel(&domain.DateInfo{Text: "1 JAN 1900"}, &domain.DateInfo{Text: "1950"}, true))
	fmt.Println(service.TimespanLabel(&domain.DateInfo{Text: "about 1900"}, nil, false))
	fmt.Println(service.TimespanLabel(nil, nil, true))
}
