// Package jmdict streams JMdict XML, decodes it permissively, and writes
// parsed entries into a dict.Writer.
package jmdict

import "encoding/xml"

// xmlEntry mirrors one <entry> element of the JMdict schema.
type xmlEntry struct {
	XMLName xml.Name  `xml:"entry"`
	EntSeq  string    `xml:"ent_seq"`
	KEle    []xmlKEle `xml:"k_ele"`
	REle    []xmlREle `xml:"r_ele"`
	Sense   []xmlSense `xml:"sense"`
}

type xmlKEle struct {
	Keb string `xml:"keb"`
	// KePri holds priority tokens (news1, ichi1, ...).
	KePri []string `xml:"ke_pri"`
}

type xmlREle struct {
	Reb       string   `xml:"reb"`
	ReNokanji *string  `xml:"re_nokanji"`
	RePri     []string `xml:"re_pri"`
}

type xmlSense struct {
	Pos     []string    `xml:"pos"`
	Field   []string    `xml:"field"`
	Dial    []string    `xml:"dial"`
	Misc    []string    `xml:"misc"`
	LSource []xmlLSource `xml:"lsource"`
	Gloss   []xmlGloss  `xml:"gloss"`
	Example []xmlExample `xml:"example"`
}

type xmlLSource struct {
	Lang string `xml:"lang,attr"`
}

type xmlGloss struct {
	Lang  string `xml:"lang,attr"`
	GType string `xml:"g_type,attr"`
	Text  string `xml:",chardata"`
}

type xmlExample struct {
	SourceText string `xml:"ex_srce"`
	// ex_sent appears twice: source-language then target-language. JMdict
	// distinguishes them by the xml:lang attribute; "jpn" is the source.
	Sentences []xmlExSentence `xml:"ex_sent"`
}

type xmlExSentence struct {
	Lang string `xml:"lang,attr"`
	Text string `xml:",chardata"`
}
