package domain

type StyleRule struct {
	ID       string
	Category StyleCategory
	Rule     string
	Severity RuleSeverity
}

type StyleGuide struct {
	ProjectID string
	Name      string
	Type      StyleGuideType
	Rules     []StyleRule
}

func (g *StyleGuide) Clone() *StyleGuide {
	if g == nil {
		return nil
	}
	c := *g
	c.Rules = cloneSlice(g.Rules)
	return &c
}
