package i18n

// builtin holds the catalogs compiled into the binary. The document can add
// its own keys per language through a translations file.
var builtin = map[string]map[string]string{
	"en": {
		KeyScrollWarning:   "⚠️ You haven't seen all the content yet!",
		KeyWarningContinue: "Continue Reading",
		KeyWarningClose:    "Close Anyway",
		KeyScrollHint:      "scroll down",
		KeyProgress:        "done",
		KeyLanguage:        "Language",
		KeyCopied:          "Copied to clipboard",
		KeyAllDone:         "Every item is checked",
	},
	"is": {
		KeyScrollWarning:   "⚠️ Þú hefur ekki séð allt efnið ennþá!",
		KeyWarningContinue: "Halda áfram að lesa",
		KeyWarningClose:    "Loka samt",
		KeyScrollHint:      "skruna niður",
		KeyProgress:        "lokið",
		KeyLanguage:        "Tungumál",
		KeyCopied:          "Afritað",
		KeyAllDone:         "Allt er hakað við",
	},
	"de": {
		KeyScrollWarning:   "⚠️ Sie haben noch nicht alles gesehen!",
		KeyWarningContinue: "Weiterlesen",
		KeyWarningClose:    "Trotzdem schließen",
		KeyScrollHint:      "nach unten scrollen",
		KeyProgress:        "erledigt",
		KeyLanguage:        "Sprache",
		KeyCopied:          "In die Zwischenablage kopiert",
		KeyAllDone:         "Alle Punkte erledigt",
	},
	"ar": {
		KeyScrollWarning:   "⚠️ لم تشاهد كل المحتوى بعد!",
		KeyWarningContinue: "متابعة القراءة",
		KeyWarningClose:    "إغلاق على أي حال",
		KeyScrollHint:      "مرر للأسفل",
		KeyProgress:        "مكتمل",
		KeyLanguage:        "اللغة",
	},
}
