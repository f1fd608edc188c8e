package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/use-agent/codaddy/extractor"
)

func TestReconstructLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pre  string
		want []string
	}{
		{"single text node", `<pre>hello</pre>`, []string{"hello"}},
		{"breaks split lines", `<pre>3<br>1 2 3<br></pre>`, []string{"3", "1 2 3"}},
		{"trailing text without break", `<pre>3<br>1 2 3</pre>`, []string{"3", "1 2 3"}},
		{"lines are trimmed", `<pre>  5  <br>	6 7 </pre>`, []string{"5", "6 7"}},
		{"blank runs between breaks emit nothing", `<pre>a<br>   <br><br>b</pre>`, []string{"a", "b"}},
		{"text runs concatenate across skipped elements", `<pre>1 2<span>x</span> 3<br>4</pre>`, []string{"1 2 3", "4"}},
		{"falls back to subtree text", `<pre><span> 42 </span></pre>`, []string{"42"}},
		{"empty node yields one empty line", `<pre></pre>`, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, tt.pre)
			got := extractor.ReconstructLines(doc.Find("pre").Get(0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstructLines_NilNode(t *testing.T) {
	t.Parallel()

	assert.Nil(t, extractor.ReconstructLines(nil))
}

func TestReconstructLines_Idempotent(t *testing.T) {
	t.Parallel()

	first := extractor.ReconstructLines(parse(t, `<pre>1 2 3</pre>`).Find("pre").Get(0))
	again := extractor.ReconstructLines(parse(t, `<pre>`+first[0]+`</pre>`).Find("pre").Get(0))

	assert.Equal(t, []string{"1 2 3"}, first)
	assert.Equal(t, first, again)
}
