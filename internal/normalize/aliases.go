package normalize

// Canonical statistic keys. These name the stable display schema; the alias
// table maps each one to the source spellings seen across engine versions.
const (
	StatChiSquare  = "chi-square"
	StatDF         = "df"
	StatPValue     = "p-value"
	StatCFI        = "cfi"
	StatTLI        = "tli"
	StatRMSEA      = "rmsea"
	StatRMSEALower = "rmsea_lower"
	StatRMSEAUpper = "rmsea_upper"
)

// AliasTable maps a canonical statistic key to the source key spellings that
// may carry it, in resolution order. It is data, not code: schema drift in a
// new engine version is handled by extending the table in configuration.
type AliasTable map[string][]string

// DefaultAliases covers the key spellings observed across engine versions.
func DefaultAliases() AliasTable {
	return AliasTable{
		StatChiSquare:  {"Chi-square", "Chi2", "chisq", "Chi-Square"},
		StatDF:         {"df", "DoF", "Degrees of Freedom", "DF"},
		StatPValue:     {"p-value", "PValue", "pvalue", "P-value"},
		StatCFI:        {"CFI", "cfi"},
		StatTLI:        {"TLI", "tli", "NNFI"},
		StatRMSEA:      {"RMSEA", "rmsea"},
		StatRMSEALower: {"RMSEA Lower", "RMSEA_CI_lower", "rmsea.ci.lower"},
		StatRMSEAUpper: {"RMSEA Upper", "RMSEA_CI_upper", "rmsea.ci.upper"},
	}
}

// Merge overlays configured spellings onto the defaults. A configured entry
// replaces the default spelling list for that canonical key; unknown
// canonical keys are ignored rather than rejected, so a config written for a
// newer release does not break an older one.
func (t AliasTable) Merge(overrides AliasTable) AliasTable {
	merged := make(AliasTable, len(t))
	for key, spellings := range t {
		merged[key] = append([]string(nil), spellings...)
	}
	for key, spellings := range overrides {
		if _, known := merged[key]; known && len(spellings) > 0 {
			merged[key] = append([]string(nil), spellings...)
		}
	}
	return merged
}

// resolve finds the first matching spelling present in the raw statistics
// mapping and returns its classified value. No match yields Unavailable.
func (t AliasTable) resolve(key string, raw map[string]any) Value {
	for _, spelling := range t[key] {
		if v, ok := raw[spelling]; ok {
			return ValueOf(v)
		}
	}
	return Unavailable()
}
