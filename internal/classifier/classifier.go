package classifier

import (
	"regexp"
)

// SystemSender es el nombre que Wikidot muestra en las notificaciones del sistema
const SystemSender = "Wikidot"

// Locale identifica un idioma de la interfaz de Wikidot
type Locale string

const (
	English            Locale = "english"
	Catalan            Locale = "catalan"
	ChineseSimplified  Locale = "chineseSimplified"
	ChineseTraditional Locale = "chineseTraditional"
	Czech              Locale = "czech"
	Esperanto          Locale = "esperanto"
	French             Locale = "french"
	German             Locale = "german"
	Italian            Locale = "italian"
	Japanese           Locale = "japanese"
	Korean             Locale = "korean"
	Spanish            Locale = "spanish"
	Polish             Locale = "polish"
	Russian            Locale = "russian"
	Serbian            Locale = "serbian"
	Vietnamese         Locale = "vietnamese"
)

// Texts holds the verbatim subject of an "application received" notification and the
// pattern that extracts the site name from its preview. A nil Preview means nobody has
// transcribed that locale's preview yet: extraction always fails.
type Texts struct {
	Subject string
	Preview *regexp.Regexp
}

// Supported reports whether the locale can actually yield a site name
func (t Texts) Supported() bool {
	return t.Preview != nil
}

// order fija el orden de evaluación y de los avisos
var order = []Locale{
	English, Catalan, ChineseSimplified, ChineseTraditional, Czech, Esperanto, French,
	German, Italian, Japanese, Korean, Spanish, Polish, Russian, Serbian, Vietnamese,
}

var table = map[Locale]Texts{
	English: {
		Subject: "You received a membership application",
		Preview: regexp.MustCompile(`applied for membership on (.*), one of your sites`),
	},
	Catalan: {
		Subject: "Heu rebut una sol·licitud de pertinença",
		Preview: regexp.MustCompile(`ha sol·licitat la subscripció a (.*), un dels vostres llocs`),
	},
	ChineseSimplified: {
		Subject: "您收到了一份成员资格申请",
		Preview: regexp.MustCompile(`申请成为您管理的网站 (.*) 的成员`),
	},
	ChineseTraditional: {Subject: "您收到了一封成員資格申請書"},
	Czech:              {Subject: "Dostal jsi žádanku o členství"},
	Esperanto:          {Subject: "Vi ricevis membriĝpeton"},
	French:             {Subject: "Vous avez reçu une demande d'adhésion"},
	German:             {Subject: "Sie haben ein Antrag zur Mitgliedschaft erhalten"},
	Italian:            {Subject: "Hai ricevuto una domanda di adesione"},
	Japanese:           {Subject: "参加希望書を受け取りました。"},
	Korean:             {Subject: "회원가입 신청서를 받았습니다."},
	Spanish:            {Subject: "Has recibido una petición de membresía"},
	Polish:             {Subject: "Otrzymałeś aplikację o członkostwo"},
	Russian:            {Subject: "Вам подана заявка на участие"},
	Serbian:            {Subject: "Добили сте пријаву за чланство"},
	Vietnamese:         {Subject: "Bạn đã nhận được đơn tham gia"},
}

// Fields son los datos crudos que se leen de una fila del inbox
type Fields struct {
	SenderIsSystem bool // The sender is not a regular user link
	SenderName     string
	Subject        string
	Preview        string
}

// Result is the outcome of classifying one inbox row
type Result struct {
	IsApplication bool
	Site          string
	Locale        Locale
}

// Lookup devuelve los textos de un idioma
func Lookup(l Locale) (Texts, bool) {
	t, ok := table[l]
	return t, ok
}

// Locales returns every known locale in table order
func Locales() []Locale {
	out := make([]Locale, len(order))
	copy(out, order)
	return out
}

// UnsupportedLocales lists the locales whose subject is recognised but whose preview
// pattern is still missing. Applications in those languages are never deleted.
func UnsupportedLocales() []Locale {
	var out []Locale
	for _, l := range order {
		if !table[l].Supported() {
			out = append(out, l)
		}
	}
	return out
}

// Classify decide si una fila es una solicitud de membresía borrable.
// Subject match alone is not enough: the site must be extracted from the preview.
func Classify(f Fields) Result {
	if !f.SenderIsSystem || f.SenderName != SystemSender {
		return Result{}
	}

	for _, l := range order {
		t := table[l]
		if f.Subject != t.Subject {
			continue
		}
		if !t.Supported() {
			return Result{Locale: l}
		}
		m := t.Preview.FindStringSubmatch(f.Preview)
		if m == nil {
			return Result{Locale: l}
		}
		return Result{IsApplication: true, Site: m[1], Locale: l}
	}
	return Result{}
}
