package corpus

import "sync"

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the compiled-in "Shared Drive" repository.
func Default() *Corpus {
	defaultOnce.Do(func() {
		defaultCorpus = MustNew(SharedDrive())
	})
	return defaultCorpus
}

type rel = map[Tag]RelevanceLevel

// SharedDrive builds a fresh copy of the mock enterprise repository: a
// Recruiting folder (candidates), HR Policies and Legal & Compliance.
func SharedDrive() *FolderNode {
	return &FolderNode{
		ID:   RootID,
		Name: "Shared Drive",
		Children: []Node{
			recruitingFolder(),
			hrFolder(),
			legalFolder(),
		},
	}
}

func recruitingFolder() *FolderNode {
	return &FolderNode{
		ID:   "recruiting",
		Name: "Recruiting",
		Children: []Node{
			&FileNode{
				ID:           "rec-1",
				Name:         "Resume_Sarah_Chen_Senior_Frontend.pdf",
				SizeLabel:    "245 KB",
				ModifiedDate: "2024-01-15",
				ContentTags:  []Tag{TagReact, TagExperience, TagEducation},
				Content: MockContent{
					Summary:   "Senior Frontend Developer with 5 years React experience",
					Details:   "React, TypeScript, Redux, GraphQL. MS Computer Science Stanford.",
					Relevance: rel{TagReact: RelevanceHigh, TagExperience: RelevanceHigh, TagPython: RelevanceNone},
				},
			},
			&FileNode{
				ID:           "rec-2",
				Name:         "Resume_Michael_Torres_Fullstack.pdf",
				SizeLabel:    "198 KB",
				ModifiedDate: "2024-01-18",
				ContentTags:  []Tag{TagReact, TagPython, TagExperience, TagEducation},
				Content: MockContent{
					Summary:   "Fullstack Developer with React frontend and Python backend",
					Details:   "React 3 years, Python/Django 4 years, PostgreSQL, AWS.",
					Relevance: rel{TagReact: RelevanceMedium, TagPython: RelevanceHigh, TagExperience: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "rec-3",
				Name:         "Resume_Emily_Watson_Backend.pdf",
				SizeLabel:    "156 KB",
				ModifiedDate: "2024-01-20",
				ContentTags:  []Tag{TagPython, TagExperience, TagEducation},
				Content: MockContent{
					Summary:   "Backend Engineer specializing in Python and Java",
					Details:   "Python, Java, Kubernetes, microservices. No frontend experience.",
					Relevance: rel{TagReact: RelevanceNone, TagPython: RelevanceHigh, TagExperience: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "rec-4",
				Name:         "Interview_Notes_Sarah_Chen_2024-01-22.docx",
				SizeLabel:    "34 KB",
				ModifiedDate: "2024-01-22",
				ContentTags:  []Tag{TagReact, TagInterview},
				Content: MockContent{
					Summary:   "Technical interview notes - strong React performance",
					Details:   "Excellent React architecture knowledge. Built component library. Recommended for senior role.",
					Relevance: rel{TagReact: RelevanceHigh, TagInterview: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "rec-5",
				Name:         "Interview_Notes_Michael_Torres_2024-01-25.docx",
				SizeLabel:    "28 KB",
				ModifiedDate: "2024-01-25",
				ContentTags:  []Tag{TagReact, TagPython, TagInterview},
				Content: MockContent{
					Summary:   "Technical interview notes - strong Python, decent React",
					Details:   "Very strong Python/Django. React knowledge is functional but not deep. Good for fullstack role.",
					Relevance: rel{TagReact: RelevanceMedium, TagPython: RelevanceHigh, TagInterview: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "rec-6",
				Name:         "Recruiting_Pipeline_Q1_2024.xlsx",
				SizeLabel:    "567 KB",
				ModifiedDate: "2024-01-28",
				ContentTags:  []Tag{},
				Content: MockContent{
					Summary:   "Pipeline tracking spreadsheet with candidate status",
					Details:   "Names, stages, dates. No skill or experience details.",
					Relevance: rel{TagReact: RelevanceNone, TagExperience: RelevanceNone},
				},
			},
			&FileNode{
				ID:           "rec-7",
				Name:         "Job_Description_Senior_Frontend_Engineer.docx",
				SizeLabel:    "45 KB",
				ModifiedDate: "2024-01-10",
				ContentTags:  []Tag{TagReact},
				Content: MockContent{
					Summary: "Job posting requiring 5+ years React experience",
					Details: "Requirements: React 5+ years, TypeScript, state management.",
					// mentions React as a requirement, not candidate experience
					Relevance: rel{TagReact: RelevanceLow, TagExperience: RelevanceNone},
				},
			},
		},
	}
}

func hrFolder() *FolderNode {
	return &FolderNode{
		ID:   "hr",
		Name: "HR Policies",
		Children: []Node{
			&FileNode{
				ID:           "hr-1",
				Name:         "Employee_Handbook_2024.pdf",
				SizeLabel:    "2.4 MB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{TagPTO, TagRemote, TagCompensation},
				Content: MockContent{
					Summary:   "Comprehensive employee handbook covering all policies",
					Details:   "PTO: 20 days. Remote: hybrid 3/2. Benefits overview included.",
					Relevance: rel{TagPTO: RelevanceHigh, TagRemote: RelevanceHigh, TagCompensation: RelevanceMedium},
				},
			},
			&FileNode{
				ID:           "hr-2",
				Name:         "PTO_and_Leave_Policy_2024.pdf",
				SizeLabel:    "156 KB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{TagPTO},
				Content: MockContent{
					Summary:   "Detailed PTO policy - accrual, rollover, blackout dates",
					Details:   "20 days PTO, 5 day rollover max, accrues monthly.",
					Relevance: rel{TagPTO: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "hr-3",
				Name:         "Remote_Work_Guidelines.docx",
				SizeLabel:    "89 KB",
				ModifiedDate: "2024-01-05",
				ContentTags:  []Tag{TagRemote},
				Content: MockContent{
					Summary:   "Remote work policy - hybrid schedule, equipment, expectations",
					Details:   "Hybrid: 3 days office, 2 days remote. $500 home office stipend.",
					Relevance: rel{TagRemote: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "hr-4",
				Name:         "Compensation_Bands_2024_CONFIDENTIAL.xlsx",
				SizeLabel:    "234 KB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{TagCompensation},
				Content: MockContent{
					Summary:   "Salary bands by level and department",
					Details:   "Senior Engineer: $150-180K. Staff: $180-220K.",
					Relevance: rel{TagCompensation: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "hr-5",
				Name:         "Org_Chart_January_2024.pdf",
				SizeLabel:    "1.2 MB",
				ModifiedDate: "2024-01-15",
				ContentTags:  []Tag{},
				Content: MockContent{
					Summary:   "Organization chart showing reporting structure",
					Details:   "Visual org chart. No policy or candidate information.",
					Relevance: rel{},
				},
			},
		},
	}
}

func legalFolder() *FolderNode {
	return &FolderNode{
		ID:   "legal",
		Name: "Legal & Compliance",
		Children: []Node{
			&FileNode{
				ID:           "legal-1",
				Name:         "NDA_Template_Mutual_2024.docx",
				SizeLabel:    "67 KB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{TagNDA},
				Content: MockContent{
					Summary:   "Standard mutual NDA template",
					Details:   "Confidentiality period: 2 years. Mutual obligations.",
					Relevance: rel{TagNDA: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "legal-2",
				Name:         "NDA_Template_Unilateral_2024.docx",
				SizeLabel:    "54 KB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{TagNDA},
				Content: MockContent{
					Summary:   "One-way NDA for vendors/contractors",
					Details:   "Confidentiality period: 3 years. Company info only.",
					Relevance: rel{TagNDA: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "legal-3",
				Name:         "Master_Services_Agreement_Template.pdf",
				SizeLabel:    "189 KB",
				ModifiedDate: "2023-11-15",
				ContentTags:  []Tag{TagNDA},
				Content: MockContent{
					Summary:   "MSA template for vendor engagements",
					Details:   "Section 8 covers confidentiality. Standard 2-year term.",
					Relevance: rel{TagNDA: RelevanceMedium},
				},
			},
			&FileNode{
				ID:           "legal-4",
				Name:         "Signed_NDA_AcmeCorp_2023-12-01.pdf",
				SizeLabel:    "234 KB",
				ModifiedDate: "2023-12-01",
				ContentTags:  []Tag{TagNDA},
				Content: MockContent{
					Summary:   "Signed NDA with Acme Corporation",
					Details:   "Executed mutual NDA. 2-year term. Covers product discussions.",
					Relevance: rel{TagNDA: RelevanceHigh},
				},
			},
			&FileNode{
				ID:           "legal-5",
				Name:         "Data_Processing_Agreement_Template.docx",
				SizeLabel:    "123 KB",
				ModifiedDate: "2024-01-01",
				ContentTags:  []Tag{},
				Content: MockContent{
					Summary:   "GDPR-compliant DPA template",
					Details:   "Data processing terms. Not related to confidentiality/NDA.",
					Relevance: rel{TagNDA: RelevanceNone},
				},
			},
		},
	}
}
