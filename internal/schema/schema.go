// Package schema declares the fixed set of site-config fields and fills in
// missing values, either by prompting or by failing fast in non-interactive
// mode.
package schema

// FieldSpec describes one recognized config field. The set is compiled in;
// unknown keys found in a config file are preserved but never prompted for.
type FieldSpec struct {
	Key      string
	Label    string
	Default  string
	Required bool
}

// Fields lists every recognized field in declaration order. The order drives
// both validation and interactive prompting.
var Fields = []FieldSpec{
	{"site_title", "Website-Titel", "your title", true},
	{"org_name", "Organisation (Footer)", "your organisation", true},
	{"site_url", "Site-URL", "https://your-github-name.github.io/your-repo", true},
	{"repo_url", "Repo-URL", "https://github.com/your-github-name/your-repo", true},
	{"logo_path", "Logo-Pfad", "images/your-logo.png", false},
	{"portal_text", "Navbar rechts: Link-Text", "Interne Lernplattform", false},
	{"portal_url", "Navbar rechts: URL", "https://www.ilias.uni-koeln.de/ilias/login.php?client_id=uk&cmd=force_login&lang=de", false},
	{"impressum_href", "Footer: Impressum-Link", "#", false},
	{"brand_hex", "Markenfarbe Light (HEX)", "#FB7171", false},
	{"brand_hex_dark", "Markenfarbe Dark (HEX, leer = wie Light)", "", false},
	{"brand_font", "Primär-Schriftfamilie (CSS)", "system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, Cantarell, Noto Sans, Arial, sans-serif", false},
	{"dark_theme", "Dark-Theme aktivieren? (yes/no)", "yes", false},
	{"responsible_name", "Verantwortliche Person", "", false},
	{"responsible_address", "Verantwortliche Adresse (HTML mit <br />)", "<br />", false},
	{"responsible_email", "E-Mail-Adresse", "", false},
	{"uni_name", "Universität", "", false},
	{"uni_url", "Universitäts-URL", "", false},
	{"institute_name", "Institut", "", false},
	{"institute_url", "Institut-URL", "", false},
	{"chair_name", "Lehrstuhl/AG", "", false},
	{"chair_url", "Lehrstuhl/AG-URL", "", false},
	{"imprint_url", "URL offizielles Uni-Impressum", "", false},
	{"course_code", "Kurs-Kürzel", "", false},
	{"contact_email", "Kontakt E-Mail", "", false},
}

// Keys returns the schema keys in declaration order.
func Keys() []string {
	out := make([]string, 0, len(Fields))
	for _, f := range Fields {
		out = append(out, f.Key)
	}
	return out
}
