package affect

import "regexp"

// Fixed Hebrew literal tables feeding the derived metrics. These are part
// of the engine, not the external category config: the renderer depends on
// their exact behavior, so they only change together with the metric code.

// Hesitation and unclear-speech markers raising the blur level.
var unclearSpeechMarkers = []string{
	"אהה",
	"אממ",
	"לא ברור",
	"לא הבנתי",
	"מה אמרת",
}

// The two filler markers Hebrew speakers loop on when rephrasing.
var repetitionMarkers = []string{
	"כאילו",
	"זאת אומרת",
}

// Emphasis words that light the shine metric on their own.
var importantWords = []string{
	"חשוב",
	"קריטי",
	"משמעותי",
	"חייבים",
	"עיקרי",
}

var achievementWords = []string{
	"הצלחתי",
	"השגתי",
	"זכיתי",
	"סיימתי",
	"ניצחתי",
}

// Strong humor phrases that open the humor gate. Generic positive
// categories alone never do.
var strongHumorPhrases = []string{
	"מצחיק",
	"קורע",
	"איזה צחוק",
	"מת מצחוק",
	"בדיחה",
}

// A laughter glyph run: three or more consecutive chet, the Hebrew "hhh".
var laughterRun = regexp.MustCompile(`ח{3,}`)

// Conversational-depth phrase tiers, heaviest first.
var existentialPhrases = []string{
	"משמעות החיים",
	"למה אני כאן",
	"מה הטעם",
	"מי אני באמת",
	"תכלית",
	"ריקנות",
	"המוות",
}

var personalStrugglePhrases = []string{
	"קשה לי",
	"אני לא מצליח",
	"אני לא מצליחה",
	"מתמודד עם",
	"מתמודדת עם",
	"נשבר לי",
}

var vulnerabilityPhrases = []string{
	"אני מפחד",
	"אני מפחדת",
	"אני חושש",
	"כואב לי",
	"אני בוכה",
	"קשה לי להודות",
}

var lifeTransitionPhrases = []string{
	"עבודה חדשה",
	"לעבור דירה",
	"פרידה",
	"גירושין",
	"להתחתן",
	"שינוי גדול",
	"התחלה חדשה",
}

var relationshipPhrases = []string{
	"אמא שלי",
	"אבא שלי",
	"אח שלי",
	"אחות שלי",
	"בן הזוג",
	"בת הזוג",
	"החברים שלי",
	"המשפחה שלי",
}

// Small talk collapses depth regardless of anything else in the segment.
var smallTalkPhrases = []string{
	"מה נשמע",
	"מה קורה",
	"מה שלומך",
	"מזג האוויר",
	"בוקר טוב",
	"ערב טוב",
	"לילה טוב",
	"סוף שבוע",
}

// Selected emotions that deepen a segment on their own.
var intenseEmotions = map[string]bool{
	"sadness": true,
	"fear":    true,
	"anger":   true,
	"anxiety": true,
	"love":    true,
}

// Phrase lists driving the proximity and spacing enums.
var strongAgreementPhrases = []string{
	"אני מסכים לגמרי",
	"אני מסכימה לגמרי",
	"בדיוק ככה",
	"צודק לגמרי",
	"אין ספק",
}

var strongDisagreementPhrases = []string{
	"ממש לא",
	"אין מצב",
	"שטויות",
	"אני לא מסכים",
	"אתה טועה",
}

var mutualUnderstandingPhrases = []string{
	"אני מבין אותך",
	"אני מבינה אותך",
	"אנחנו באותו ראש",
	"בדיוק מה שחשבתי",
	"גם אני מרגיש ככה",
}

var acceptancePhrases = []string{
	"בסדר",
	"אוקיי",
	"מקובל עלי",
	"אין בעיה",
	"שיהיה",
}

var openingPhrases = []string{
	"שלום",
	"היי",
	"אהלן",
	"נעים מאוד",
	"בוא נתחיל",
}
