package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSet(t *testing.T) {
	set := NewSet("hello %s", NewTrans(Rus, "привет %s"))

	assert.Equal(t, "hello %s", set.Text(Eng))
	assert.Equal(t, "привет %s", set.Text(Rus))
	assert.Equal(t, "hello %s", set.Text(Language("de")), "unknown language falls back to default")

	assert.Equal(t, "hello alice", set.Format(Eng, "alice"))
	assert.Equal(t, "привет alice", set.Format(Rus, "alice"))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Rus, ParseLanguage("ru"))
	assert.Equal(t, Eng, ParseLanguage("en"))
	assert.Equal(t, Eng, ParseLanguage(""))
	assert.Equal(t, Eng, ParseLanguage("unknown"))
}
