package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemFields(subject, preview string) Fields {
	return Fields{SenderIsSystem: true, SenderName: SystemSender, Subject: subject, Preview: preview}
}

func TestClassifyEnglishApplication(t *testing.T) {
	res := Classify(systemFields(
		"You received a membership application",
		"Someone applied for membership on ExampleWiki, one of your sites",
	))

	assert.True(t, res.IsApplication)
	assert.Equal(t, "ExampleWiki", res.Site)
	assert.Equal(t, English, res.Locale)
}

func TestClassifyOtherImplementedLocales(t *testing.T) {
	res := Classify(systemFields(
		"Heu rebut una sol·licitud de pertinença",
		"L'usuari ha sol·licitat la subscripció a Wiki CAT, un dels vostres llocs",
	))
	assert.True(t, res.IsApplication)
	assert.Equal(t, "Wiki CAT", res.Site)

	res = Classify(systemFields(
		"您收到了一份成员资格申请",
		"某人申请成为您管理的网站 SCP-CN 的成员",
	))
	assert.True(t, res.IsApplication)
	assert.Equal(t, "SCP-CN", res.Site)
}

func TestClassifyRejectsNonSystemSenders(t *testing.T) {
	subject := "You received a membership application"
	preview := "X applied for membership on ExampleWiki, one of your sites"

	cases := []Fields{
		{SenderIsSystem: false, SenderName: SystemSender, Subject: subject, Preview: preview},
		{SenderIsSystem: true, SenderName: "wikidot", Subject: subject, Preview: preview},
		{SenderIsSystem: true, SenderName: "Croquembouche", Subject: subject, Preview: preview},
		{SenderIsSystem: false, SenderName: "Someone", Subject: subject, Preview: preview},
	}
	for _, f := range cases {
		res := Classify(f)
		assert.False(t, res.IsApplication, "sender %+v", f)
		assert.Empty(t, res.Site)
	}
}

func TestClassifyFailsClosedOnPreviewMismatch(t *testing.T) {
	res := Classify(systemFields("You received a membership application", "something unexpected"))

	assert.False(t, res.IsApplication)
	assert.Empty(t, res.Site)
	assert.Equal(t, English, res.Locale)
}

func TestClassifyRequiresExactSubject(t *testing.T) {
	preview := "X applied for membership on ExampleWiki, one of your sites"

	for _, subject := range []string{
		"you received a membership application",
		"You received a membership application ",
		"Re: You received a membership application",
	} {
		assert.False(t, Classify(systemFields(subject, preview)).IsApplication, subject)
	}
}

func TestClassifyUnsupportedLocaleNeverMatches(t *testing.T) {
	texts, ok := Lookup(French)
	require.True(t, ok)
	require.False(t, texts.Supported())

	res := Classify(systemFields(texts.Subject, "todo"))
	assert.False(t, res.IsApplication)
	assert.Equal(t, French, res.Locale)
}

func TestUnsupportedLocales(t *testing.T) {
	unsupported := UnsupportedLocales()

	assert.Len(t, unsupported, len(Locales())-3)
	assert.NotContains(t, unsupported, English)
	assert.NotContains(t, unsupported, Catalan)
	assert.NotContains(t, unsupported, ChineseSimplified)
	assert.Contains(t, unsupported, Vietnamese)
}

func TestLocaleSubjectsAreDistinct(t *testing.T) {
	seen := map[string]Locale{}
	for _, l := range Locales() {
		texts, ok := Lookup(l)
		require.True(t, ok, l)
		prev, dup := seen[texts.Subject]
		assert.False(t, dup, "%s and %s share a subject", l, prev)
		seen[texts.Subject] = l
	}
}
