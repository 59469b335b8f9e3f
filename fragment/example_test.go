// SPDX-License-Identifier: MIT
package fragment_test

import (
	"fmt"

	"github.com/katalvlaran/molfrag/fragment"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/smiles"
)

// ExampleFragmenter_Fragment splits tert-butylcyclohexane with the
// branch point kept apart from the ring.
func ExampleFragmenter_Fragment() {
	cfg := settings.Default()
	cfg.SeparateBranchPointFromRing = true

	f, err := fragment.New(fragment.WithSettings(cfg))
	if err != nil {
		panic(err)
	}
	frags, err := f.Fragment(smiles.MustParse("CC(C)(C)C1CCCCC1"))
	if err != nil {
		panic(err)
	}
	for _, fr := range frags {
		fmt.Println(fr.Kind, fr.RealAtomCount(), len(fr.Placeholders))
	}
	// Output:
	// chain 1 1
	// branch 1 4
	// chain 1 1
	// chain 1 1
	// ring 6 1
}
