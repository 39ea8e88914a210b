// Package legal serves static legal explainers and proxies case-law search.
package legal

import "casexpert/models"

// Topics returns the curated India-focused explainers. Educational only.
func Topics() []models.LegalTopic {
	return []models.LegalTopic{
		{
			ID:    "fundamental-rights",
			Title: "Fundamental Rights (India)",
			Blurb: "Key rights under the Constitution of India and remedies under Articles 32/226.",
			SampleQuestions: []string{
				"What are the Fundamental Rights under the Constitution of India?",
				"How to file a writ petition in High Court or Supreme Court?",
			},
			Resources: []models.LegalResource{
				{Name: "Constitution of India – Fundamental Rights (India Code)", URL: "https://www.indiacode.nic.in/"},
				{Name: "NHRC India – Complaints", URL: "https://nhrc.nic.in/complaints"},
			},
		},
		{
			ID:    "women-safety",
			Title: "Women Safety & Protections (India)",
			Blurb: "POSH Act, Domestic Violence Act, IPC provisions, helplines and remedies.",
			SampleQuestions: []string{
				"What are the remedies under the Protection of Women from Domestic Violence Act, 2005?",
				"How does the POSH Act handle workplace sexual harassment?",
			},
			Resources: []models.LegalResource{
				{Name: "NCW India", URL: "https://ncw.nic.in/"},
				{Name: "POSH Act, 2013 (India Code)", URL: "https://www.indiacode.nic.in/"},
			},
		},
		{
			ID:    "legal-acts",
			Title: "Acts, Statutes, and Codes (India)",
			Blurb: "How to find Acts/Rules on India Code and eCourts services.",
			SampleQuestions: []string{
				"How do I find the text of a specific Indian Act?",
				"Difference between an Act, Rule, and Notification?",
			},
			Resources: []models.LegalResource{
				{Name: "India Code – Repository of Acts", URL: "https://www.indiacode.nic.in/"},
				{Name: "eCourts Services", URL: "https://ecourts.gov.in/services"},
			},
		},
		{
			ID:    "consumer-rights",
			Title: "Consumer Rights (India)",
			Blurb: "Consumer Protection Act, 2019 and filing complaints on CPGRAMS/NCH.",
			SampleQuestions: []string{
				"How to file a consumer complaint under the Consumer Protection Act, 2019?",
				"What are unfair trade practices under Indian law?",
			},
			Resources: []models.LegalResource{
				{Name: "National Consumer Helpline (NCH)", URL: "https://consumerhelpline.gov.in/"},
				{Name: "Consumer Protection Act, 2019 (India Code)", URL: "https://www.indiacode.nic.in/"},
			},
		},
		{
			ID:    "cyber-law",
			Title: "Cyber Law & Online Safety (India)",
			Blurb: "IT Act, 2000 and cybercrime reporting portal.",
			SampleQuestions: []string{
				"How to report cybercrime incidents in India?",
				"What are offences under the IT Act, 2000?",
			},
			Resources: []models.LegalResource{
				{Name: "Indian Cybercrime Reporting Portal", URL: "https://cybercrime.gov.in/"},
				{Name: "IT Act, 2000 (India Code)", URL: "https://www.indiacode.nic.in/"},
			},
		},
		{
			ID:    "property-law",
			Title: "Property & Tenancy (India)",
			Blurb: "Tenancy rights (state-specific), registration, and stamp duty basics.",
			SampleQuestions: []string{
				"What are common tenant rights under rent control laws?",
				"What documents are required for a property sale/registration?",
			},
			Resources: []models.LegalResource{
				{Name: "DORIS/State Registration portals", URL: "https://www.india.gov.in/topics/law-justice/registration"},
				{Name: "eStamp (SHCIL)", URL: "https://www.shcilestamp.com/"},
			},
		},
	}
}
