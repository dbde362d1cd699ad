package service

import "github.com/folio-site/folio-backend/internal/locale"

// Localized copy for the estimate payload. Every key present for "he" must
// be present for "en" and vice versa; TestLocalizedTablesComplete enforces it.

var baselineMVP = map[locale.Locale][]string{
	locale.Hebrew: {
		"אתר תדמית רספונסיבי עם תמיכה מלאה ב-RTL",
		"טופס יצירת קשר עם שליחת מייל",
		"SEO בסיסי: מטא תגיות ו-Open Graph",
		"חיבור אנליטיקס בסיסי",
	},
	locale.English: {
		"Responsive marketing site with full RTL/LTR support",
		"Contact form with email delivery",
		"Basic SEO: meta tags and Open Graph",
		"Basic analytics wiring",
	},
}

var triggerBullets = map[locale.Locale]map[string]string{
	locale.Hebrew: {
		bulletRealtime: "עדכונים בזמן אמת דרך ערוץ WebSocket",
		bulletPayment:  "תהליך תשלום עם עמוד סליקה מאובטח",
		bulletAI:       "עוזר חכם מבוסס מודל שפה",
		bulletWebGL:    "סצנת תלת־ממד אינטראקטיבית בדף הבית",
	},
	locale.English: {
		bulletRealtime: "Realtime updates over a WebSocket channel",
		bulletPayment:  "Payment flow with a hosted secure checkout page",
		bulletAI:       "LLM-backed smart assistant",
		bulletWebGL:    "Interactive 3D scene on the landing page",
	},
}

var assumptions = map[locale.Locale][]string{
	locale.Hebrew: {
		"ההערכה מכסה היקף MVP של אבן דרך אחת",
		"תכנים ונכסי מותג מסופקים על ידי הלקוח",
		"עלויות שירותי צד שלישי (אחסון, APIs) מחויבות בנפרד",
		"טווח המחיר אינדיקטיבי עד לסגירת אפיון מפורט",
	},
	locale.English: {
		"Estimate covers a single-milestone MVP scope",
		"Content and brand assets are provided by the client",
		"Third-party service costs (hosting, APIs) are billed separately",
		"Price band is indicative until a detailed spec is agreed",
	},
}
