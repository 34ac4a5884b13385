package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(FromValues(3, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, "- 3\n- 2\n- 1\n", string(data))

	data, err = yaml.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		Values *List `yaml:"values"`
	}
	err := yaml.Unmarshal([]byte("values: [3, 2, 1]\n"), &doc)
	require.NoError(t, err)
	require.NotNil(t, doc.Values)
	assert.Equal(t, "3, 2, 1, Nil", doc.Values.String())
	assert.True(t, Equal(FromValues(3, 2, 1), doc.Values))
}

func TestUnmarshalYAMLRejectsBadValues(t *testing.T) {
	for _, input := range []string{"[-1]", "[4294967296]", "[x]", "{a: 1}"} {
		t.Run(input, func(t *testing.T) {
			l := New()
			err := yaml.Unmarshal([]byte(input), l)
			assert.Error(t, err)
		})
	}
}

func TestMarshalYAMLValue(t *testing.T) {
	data, err := yaml.Marshal(*FromValues(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n", string(data))

	data, err = yaml.Marshal(List{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestUnmarshalYAMLConsumed(t *testing.T) {
	old := New()
	_ = old.Prepend(1)

	err := yaml.Unmarshal([]byte("[5, 6]"), old)
	assert.ErrorIs(t, err, ErrConsumed)
	assert.Panics(t, func() { _ = old.String() })
}

func TestUnmarshalYAMLNonEmpty(t *testing.T) {
	l := FromValues(1)

	err := yaml.Unmarshal([]byte("[2, 3]"), l)
	assert.ErrorIs(t, err, ErrNotEmpty)
	assert.Equal(t, "1, Nil", l.String())
}
