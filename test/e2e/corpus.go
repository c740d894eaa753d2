// Package e2e provides end-to-end tests with a larger corpus and multiple queries.
package e2e

import (
	"strings"

	"github.com/startwise/startwise/internal/models"
)

// QueryTestCase defines a query and the startup name(s) that must appear in
// search results. At least one of ExpectedNames must be present.
type QueryTestCase struct {
	Query         string
	ExpectedNames []string
	Description   string
}

// Corpus holds startup records and query test cases for E2E tests.
type Corpus struct {
	Startups     []*models.StartupRecord
	TestCases    []QueryTestCase
	TotalRecords int
	TotalQueries int
}

// BuildCorpus returns a corpus of startups across the tracked category
// families. Each record carries a distinctive phrase in its description so
// queries can assert the correct startup is returned.
func BuildCorpus() *Corpus {
	startups := buildStartups()
	cases := buildQueryTestCases(startups)
	return &Corpus{
		Startups:     startups,
		TestCases:    cases,
		TotalRecords: len(startups),
		TotalQueries: len(cases),
	}
}

func buildStartups() []*models.StartupRecord {
	return []*models.StartupRecord{
		{Name: "PayFlow", Description: "Payment processing infrastructure with instant settlement for online merchants", Source: "yc", Categories: []string{"Financial Technology", "Payments"}},
		{Name: "LedgerPro", Description: "Automated bookkeeping and invoice reconciliation for small businesses", Source: "yc", Categories: []string{"Financial Technology"}},
		{Name: "CreditLens", Description: "Credit scoring models built from alternative lending data", Source: "seed", Categories: []string{"Financial Technology", "Lending"}},
		{Name: "MediTrack", Description: "Patient monitoring and electronic health record tracking for clinics", Source: "seed", Categories: []string{"Healthcare & Medical"}},
		{Name: "TheraLink", Description: "Telemedicine platform connecting patients with licensed therapists", Source: "yc", Categories: []string{"Healthcare & Medical", "Telehealth"}},
		{Name: "FitPulse", Description: "Wearable fitness tracking with personalized workout coaching", Source: "seed", Categories: []string{"Healthcare & Medical", "Fitness"}},
		{Name: "VisionAI", Description: "Computer vision APIs for defect detection on factory production lines", Source: "yc", Categories: []string{"AI/ML", "Manufacturing"}},
		{Name: "ChatMind", Description: "Conversational AI assistants trained on company knowledge bases", Source: "yc", Categories: []string{"AI/ML"}},
		{Name: "DataForge", Description: "Machine learning pipelines for cleaning and labeling training data", Source: "seed", Categories: []string{"AI/ML", "Developer Tools"}},
		{Name: "ShopNest", Description: "Ecommerce storefront builder with integrated inventory management", Source: "yc", Categories: []string{"E-commerce & Retail"}},
		{Name: "CartRescue", Description: "Abandoned cart recovery campaigns for online retail stores", Source: "seed", Categories: []string{"E-commerce & Retail", "Marketing"}},
		{Name: "ClassCraft", Description: "Gamified learning management system for middle school classrooms", Source: "seed", Categories: []string{"Education Technology"}},
		{Name: "TutorBridge", Description: "Marketplace matching students with vetted online tutors", Source: "yc", Categories: []string{"Education Technology", "Marketplace"}},
		{Name: "DeployDeck", Description: "Continuous deployment dashboards for kubernetes clusters", Source: "yc", Categories: []string{"SaaS", "Developer Tools"}},
		{Name: "TeamSync", Description: "Asynchronous standup and sprint planning software for remote teams", Source: "seed", Categories: []string{"SaaS", "Productivity"}},
		{Name: "InvoiceOwl", Description: "Subscription billing and dunning automation for saas companies", Source: "seed", Categories: []string{"SaaS", "Financial Technology"}},
		{Name: "FarmSense", Description: "Soil moisture sensing and crop yield analytics for small farms", Source: "seed", Categories: []string{"AgTech"}},
		{Name: "FleetRoute", Description: "Delivery route optimization for last mile logistics fleets", Source: "yc", Categories: []string{"Logistics"}},
		{Name: "GreenGrid", Description: "Rooftop solar panel monitoring and energy usage forecasting", Source: "seed", Categories: []string{"CleanTech", "Energy"}},
		{Name: "SafeVault", Description: "Zero trust secrets management for engineering teams", Source: "yc", Categories: []string{"Security", "Developer Tools"}},
		{Name: "HireScope", Description: "Structured interview scheduling and candidate scoring for recruiters", Source: "seed", Categories: []string{"HR Tech"}},
		{Name: "RentRadar", Description: "Rental property listing aggregation with neighborhood analytics", Source: "seed", Categories: []string{"PropTech", "Real Estate"}},
		{Name: "LegalDraft", Description: "Contract drafting automation with clause risk highlighting", Source: "yc", Categories: []string{"LegalTech"}},
		{Name: "PetCareGo", Description: "On demand booking for veterinary house calls and pet grooming", Source: "seed", Categories: []string{"Consumer", "Marketplace"}},
	}
}

func buildQueryTestCases(startups []*models.StartupRecord) []QueryTestCase {
	cases := []QueryTestCase{
		{"payment processing with instant settlement", []string{"PayFlow"}, "payments signature phrase"},
		{"automated bookkeeping for small businesses", []string{"LedgerPro"}, "bookkeeping"},
		{"electronic health record tracking", []string{"MediTrack"}, "health records"},
		{"telemedicine platform for therapists", []string{"TheraLink"}, "telehealth"},
		{"computer vision defect detection", []string{"VisionAI"}, "computer vision"},
		{"conversational ai assistants", []string{"ChatMind"}, "conversational ai"},
		{"ecommerce storefront with inventory management", []string{"ShopNest"}, "ecommerce builder"},
		{"abandoned cart recovery", []string{"CartRescue"}, "cart recovery"},
		{"gamified learning management", []string{"ClassCraft"}, "gamified learning"},
		{"marketplace for online tutors", []string{"TutorBridge"}, "tutor marketplace"},
		{"continuous deployment for kubernetes", []string{"DeployDeck"}, "kubernetes deploys"},
		{"subscription billing automation", []string{"InvoiceOwl"}, "billing"},
		{"soil moisture sensing for farms", []string{"FarmSense"}, "agtech"},
		{"delivery route optimization logistics", []string{"FleetRoute"}, "route optimization"},
		{"solar panel monitoring", []string{"GreenGrid"}, "solar monitoring"},
		{"secrets management for engineering teams", []string{"SafeVault"}, "secrets management"},
		{"interview scheduling for recruiters", []string{"HireScope"}, "recruiting"},
		{"rental property listing analytics", []string{"RentRadar"}, "proptech"},
		{"contract drafting automation startup", []string{"LegalDraft"}, "legaltech"},
		{"fintech startups", []string{"PayFlow", "LedgerPro", "CreditLens", "InvoiceOwl"}, "category family query"},
	}
	// Every expected name must exist in the corpus; catch typos at build time.
	index := make(map[string]bool, len(startups))
	for _, s := range startups {
		index[s.Name] = true
	}
	for _, tc := range cases {
		for _, name := range tc.ExpectedNames {
			if !index[name] {
				panic("e2e test case expects unknown startup: " + name)
			}
		}
	}
	return cases
}

// containsPhrase reports whether a record's name or description contains the
// phrase, case-insensitively. Used to sanity-check signature phrases.
func containsPhrase(rec *models.StartupRecord, phrase string) bool {
	p := strings.ToLower(phrase)
	return strings.Contains(strings.ToLower(rec.Name), p) ||
		strings.Contains(strings.ToLower(rec.Description), p)
}
