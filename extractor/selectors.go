package extractor

import "github.com/andybalholm/cascadia"

// Fixed locations on a rendered problem page. Compiled once; cascadia
// selectors are safe for concurrent use.
var (
	selRoot     = cascadia.MustCompile(".problem-statement")
	selTitle    = cascadia.MustCompile(".header .title")
	selNote     = cascadia.MustCompile(".note")
	selInputSp  = cascadia.MustCompile(".input-specification")
	selOutputSp = cascadia.MustCompile(".output-specification")

	// selParagraph matches the root's statement children, i.e. every div
	// that is not one of the known structural blocks.
	selParagraph = cascadia.MustCompile(
		"div:not(.header):not(.input-specification):not(.output-specification):not(.sample-tests):not(.note)",
	)

	selTimeLimit     = cascadia.MustCompile(".time-limit")
	selMemoryLimit   = cascadia.MustCompile(".memory-limit")
	selPropertyTitle = cascadia.MustCompile(".property-title")

	selSampleInput  = cascadia.MustCompile(".sample-test .input pre")
	selSampleOutput = cascadia.MustCompile(".sample-test .output pre")
	selExampleLine  = cascadia.MustCompile(".test-example-line")
)

// sectionTitleClass marks the heading element inside a section container.
const sectionTitleClass = "section-title"
