// SPDX-License-Identifier: MIT

package artifact_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/q4/artifact"
)

func ExampleReadCSV() {
	in := "id,x,y\nA,1,2\nB,3,4.25\n"
	tab, err := artifact.ReadCSV(strings.NewReader(in), artifact.WithLabelColumn("id"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tab.Header, tab.Labels)
	if err = artifact.WriteCSV(os.Stdout, tab.Header, tab.Data); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// [x y] [A B]
	// x,y
	// 1,2
	// 3,4.25
}
