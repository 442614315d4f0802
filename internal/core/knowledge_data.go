package core

import "github.com/711pranjal/Egnyte-TrustLens/internal/corpus"

// DefaultKnowledge returns the demo rule set: three curated "hero" questions,
// eight keyword patterns and canned answers per topic.
func DefaultKnowledge() *Knowledge {
	return &Knowledge{
		SampleQuestions: sampleQuestions(),
		QueryPatterns:   queryPatterns(),
		AnswerTemplates: answerTemplates(),
		TopicFolders: map[corpus.Tag]FolderHint{
			corpus.TagReact:        {FolderID: "recruiting", FolderName: "Recruiting", Content: "candidate resumes and interview notes"},
			corpus.TagPython:       {FolderID: "recruiting", FolderName: "Recruiting", Content: "candidate resumes"},
			corpus.TagExperience:   {FolderID: "recruiting", FolderName: "Recruiting", Content: "candidate information"},
			corpus.TagInterview:    {FolderID: "recruiting", FolderName: "Recruiting", Content: "interview notes"},
			corpus.TagNDA:          {FolderID: "legal", FolderName: "Legal & Compliance", Content: "NDA templates and agreements"},
			corpus.TagPTO:          {FolderID: "hr", FolderName: "HR Policies", Content: "leave and PTO policies"},
			corpus.TagRemote:       {FolderID: "hr", FolderName: "HR Policies", Content: "remote work guidelines"},
			corpus.TagCompensation: {FolderID: "hr", FolderName: "HR Policies", Content: "compensation information"},
		},
	}
}

func sampleQuestions() []SampleQuestion {
	return []SampleQuestion{
		{
			ID:           "sarah_react",
			Patterns:     []string{"sarah", "chen", "sarah chen"},
			RequiredTags: []corpus.Tag{corpus.TagReact},
			Answers: AnswerSet{
				High: Answer{
					Text: `Based on Resume_Sarah_Chen_Senior_Frontend.pdf and Interview_Notes_Sarah_Chen_2024-01-22.docx, **Sarah Chen** has extensive React experience:

• **5 years** of professional React development
• Built and maintained **component libraries** from scratch
• Expert in **TypeScript** and **Redux** state management
• Experience with **GraphQL** integration

**Interview Assessment:** Per Interview_Notes_Sarah_Chen_2024-01-22.docx, her React architecture knowledge was rated as "excellent" with specific mention of her ability to design scalable component hierarchies. The interviewer recommended her for a senior frontend role.

**Education:** MS in Computer Science from Stanford University.`,
					Explanation: "High confidence because both the resume and interview notes consistently describe Sarah's React expertise, with specific details about years of experience and technical assessment.",
				},
				Medium: Answer{
					Text: `Based on the available documents, **Sarah Chen** appears to have strong React experience:

• Listed as **Senior Frontend Developer** with React focus
• Resume mentions TypeScript and modern frontend stack

However, I could only access limited documentation. The interview notes or additional assessments weren't included in the search scope, so I cannot provide a complete picture of her evaluated skills.`,
					Explanation: "Medium confidence because only one source (resume) was accessible. Interview feedback would help corroborate the experience level.",
				},
				Low: Answer{
					Text: `I couldn't find information about Sarah Chen's React experience in the current search scope.

**Why?** The files being searched don't contain candidate information. Sarah Chen's data is in the **Recruiting** folder.

**To get this answer:**
• Switch to **"All Documents"** scope, or
• Click the **Recruiting** folder in the sidebar, or
• Select her files directly:
  - Resume_Sarah_Chen_Senior_Frontend.pdf
  - Interview_Notes_Sarah_Chen_2024-01-22.docx`,
					Explanation: "Low confidence because the current scope doesn't include the Recruiting folder where candidate information is stored.",
				},
			},
			RelevantFileIDs:    []string{"rec-1", "rec-4"},
			HighRelevanceIDs:   []string{"rec-1", "rec-4"},
			MediumRelevanceIDs: []string{},
			HomeFolder:         "recruiting",
			SourcesLabel:       "Relevant candidate files",
		},
		{
			ID:           "react_migration",
			Patterns:     []string{"migration", "migrate", "documents mention", "which documents", "react migration"},
			RequiredTags: []corpus.Tag{corpus.TagReact},
			Answers: AnswerSet{
				High: Answer{
					Text: `I searched all available documents for mentions of React or frontend migration. Here's what I found:

**Directly Relevant:**
• Resume_Sarah_Chen_Senior_Frontend.pdf - Mentions experience with "migrating legacy jQuery applications to React" and "leading frontend modernization initiatives"
• Interview_Notes_Sarah_Chen_2024-01-22.docx - Discusses her approach to "incremental migration strategies" during technical interview

**Partially Relevant:**
• Resume_Michael_Torres_Fullstack.pdf - References React adoption but not specifically migration projects
• Job_Description_Senior_Frontend_Engineer.docx - Lists "experience with legacy system modernization" as a preferred qualification

**Not Found:** No dedicated migration planning documents, technical specs, or project plans were found in the document repository.`,
					Explanation: "High confidence in the search results because all document folders were searched. Note: This reflects what candidates have done, not internal migration plans.",
				},
				Medium: Answer{
					Text: `Within the current folder, I found some references to React experience:

• Resume files mention React skills and experience
• Interview notes discuss frontend development approaches

However, the search was limited to this folder. Other folders may contain additional relevant documents such as technical specifications or project plans.`,
					Explanation: "Medium confidence because only one folder was searched. Migration planning documents might be in Engineering or other folders not in scope.",
				},
				Low: Answer{
					Text: `I couldn't find documents mentioning React migration in the selected files.

The files currently in scope don't appear to contain frontend development or migration-related content. Try:
• Searching "All Documents" to find any React mentions
• Checking the Recruiting folder for candidate experience with migrations
• Checking if an Engineering folder exists with technical documentation`,
					Explanation: "Low confidence because the selected files don't contain React or migration-related content.",
				},
			},
			RelevantFileIDs:    []string{"rec-1", "rec-4", "rec-2", "rec-7"},
			HighRelevanceIDs:   []string{"rec-1", "rec-4"},
			MediumRelevanceIDs: []string{"rec-2", "rec-7"},
			HomeFolder:         "recruiting",
			SourcesLabel:       "Relevant candidate files",
		},
		{
			ID:           "frontend_summary",
			Patterns:     []string{"enough info", "sufficient", "summarize", "summarise", "frontend skills", "front-end skills", "coverage"},
			RequiredTags: []corpus.Tag{corpus.TagReact, corpus.TagExperience},
			Answers: AnswerSet{
				High: Answer{
					Text: `**Yes**, there is sufficient information to summarize frontend skills across candidates:

**Coverage Assessment:**
| Candidate | Resume | Interview Notes | Skills Documented |
|-----------|--------|-----------------|-------------------|
| Sarah Chen | ✅ | ✅ | React, TypeScript, Redux, GraphQL |
| Michael Torres | ✅ | ✅ | React, Python, Full-stack |
| Emily Watson | ✅ | ❌ | Backend only (Java, Python) |

**Summary of Frontend Capabilities:**
• **Strong React talent:** Sarah Chen (5 yrs) is the standout frontend candidate
• **Fullstack option:** Michael Torres can handle React but is stronger in backend
• **Gap:** No dedicated CSS/design system expertise documented

**Confidence in this assessment:** High - we have both resumes and interview evaluations for the key frontend candidates.`,
					Explanation: "High confidence because multiple document types (resumes + interviews) are available for cross-referencing, providing a complete picture of candidate skills.",
				},
				Medium: Answer{
					Text: `**Partially** - there is some information about frontend skills, but coverage is incomplete:

**What I Found:**
• Resume information for candidates mentioning React/frontend
• Some details about technical backgrounds

**What's Missing:**
• Interview assessments for skill verification
• Detailed technical evaluation scores
• Portfolio or code sample reviews

To provide a comprehensive frontend skills summary, I would need access to interview notes and any technical assessment documents.`,
					Explanation: "Medium confidence because only resumes are in scope. Interview notes would significantly improve the reliability of any skills summary.",
				},
				Low: Answer{
					Text: `**No** - there is insufficient information in the current scope to summarize frontend skills.

The selected files don't contain candidate information or skills documentation. Frontend skills data is typically found in:
• **Recruiting folder:** Candidate resumes and interview notes
• **HR folder:** Job descriptions and role requirements

Please expand the search scope to include relevant folders.`,
					Explanation: "Low confidence because the current scope doesn't include any candidate skill information. Cannot produce a meaningful frontend summary.",
				},
			},
			RelevantFileIDs:    []string{"rec-1", "rec-2", "rec-3", "rec-4", "rec-5"},
			HighRelevanceIDs:   []string{"rec-1", "rec-4"},
			MediumRelevanceIDs: []string{"rec-2", "rec-5", "rec-3"},
			HomeFolder:         "recruiting",
			SourcesLabel:       "Relevant candidate files",
		},
	}
}

func queryPatterns() []QueryPattern {
	return []QueryPattern{
		{
			Topic:    corpus.TagReact,
			Label:    "React experience",
			Keywords: []string{"react", "frontend", "front-end", "front end", "ui developer", "component"},
			Tags:     []corpus.Tag{corpus.TagReact},
		},
		{
			Topic:    corpus.TagPython,
			Label:    "Python experience",
			Keywords: []string{"python", "django", "flask", "backend", "back-end", "back end"},
			Tags:     []corpus.Tag{corpus.TagPython},
		},
		{
			Topic:    corpus.TagExperience,
			Label:    "work experience",
			Keywords: []string{"experience", "years", "background", "skills", "qualified", "candidates"},
			Tags:     []corpus.Tag{corpus.TagExperience},
		},
		{
			Topic:    corpus.TagNDA,
			Label:    "NDA terms",
			Keywords: []string{"nda", "non-disclosure", "confidentiality", "confidential", "secret"},
			Tags:     []corpus.Tag{corpus.TagNDA},
		},
		{
			Topic:    corpus.TagPTO,
			Label:    "PTO policy",
			Keywords: []string{"pto", "vacation", "leave", "time off", "holiday", "days off"},
			Tags:     []corpus.Tag{corpus.TagPTO},
		},
		{
			Topic:    corpus.TagRemote,
			Label:    "remote work policy",
			Keywords: []string{"remote", "work from home", "wfh", "hybrid", "office", "home office"},
			Tags:     []corpus.Tag{corpus.TagRemote},
		},
		{
			Topic:    corpus.TagCompensation,
			Label:    "compensation",
			Keywords: []string{"salary", "compensation", "pay", "benefits", "bonus", "equity"},
			Tags:     []corpus.Tag{corpus.TagCompensation},
		},
		{
			Topic:    corpus.TagInterview,
			Label:    "interview feedback",
			Keywords: []string{"interview", "feedback", "assessment", "evaluation", "recommendation"},
			Tags:     []corpus.Tag{corpus.TagInterview},
		},
	}
}

func answerTemplates() map[string]AnswerSet {
	return map[string]AnswerSet{
		string(corpus.TagReact): {
			High: Answer{
				Text:        "Based on the resumes and interview notes reviewed, here are candidates with **React experience**:\n\n• **Sarah Chen** - 5 years React experience, built component libraries, TypeScript expert. Interview feedback: \"Excellent React architecture knowledge.\"\n\n• **Michael Torres** - 3 years React experience, primarily fullstack. Interview noted React skills as \"functional but not deep.\"\n\nSarah Chen appears to be the strongest React candidate.",
				Explanation: "High confidence because multiple documents (resumes + interview notes) consistently describe React experience levels for these candidates.",
			},
			Medium: Answer{
				Text:        "I found some React experience information:\n\n• **Sarah Chen** has React experience listed on her resume\n• **Michael Torres** mentions React as part of fullstack work\n\nHowever, I couldn't access all interview notes to verify skill assessments.",
				Explanation: "Medium confidence because while resumes mention React, the interview feedback wasn't in scope to corroborate the experience levels.",
			},
			Low: Answer{
				Text:        "I couldn't find detailed React experience information in the selected files. The Recruiting folder contains candidate resumes that would have this information.",
				Explanation: "Low confidence because the search scope didn't include the Recruiting folder where candidate information is stored.",
			},
		},
		string(corpus.TagNDA): {
			High: Answer{
				Text:        "Based on our NDA templates, the confidentiality terms are:\n\n• **Mutual NDA**: 2-year confidentiality period\n• **Unilateral NDA**: 3-year confidentiality period\n• **MSA Section 8**: References 2-year standard term\n\nThe signed NDA with Acme Corp follows the 2-year mutual template.",
				Explanation: "High confidence because multiple NDA documents were reviewed and they contain explicit confidentiality period terms.",
			},
			Medium: Answer{
				Text:        "The standard confidentiality period appears to be **2 years** based on the NDA template found. However, specific signed agreements may have different terms.",
				Explanation: "Medium confidence because only one NDA document was accessible. Other NDAs in the Legal folder may have different terms.",
			},
			Low: Answer{
				Text:        "I couldn't find NDA information in the selected files. The Legal & Compliance folder contains NDA templates and signed agreements.",
				Explanation: "Low confidence because the search scope didn't include Legal documents where NDA information is stored.",
			},
		},
		string(corpus.TagPTO): {
			High: Answer{
				Text:        "According to HR policies, employees receive:\n\n• **20 days** PTO per year\n• Maximum **5 days** can roll over to next year\n• PTO accrues monthly\n\nThis is documented in both the Employee Handbook and the dedicated PTO Policy document.",
				Explanation: "High confidence because both the handbook and PTO policy document confirm the same information.",
			},
			Medium: Answer{
				Text:        "The Employee Handbook mentions **20 days** PTO, but I couldn't access the detailed PTO Policy document to confirm accrual and rollover rules.",
				Explanation: "Medium confidence because the answer comes from a general handbook reference. The dedicated PTO policy wasn't in scope.",
			},
			Low: Answer{
				Text:        "PTO policy information wasn't found in the selected files. Check the HR Policies folder for the PTO and Leave Policy document.",
				Explanation: "Low confidence because no HR policy documents were included in the search scope.",
			},
		},
		string(corpus.TagRemote): {
			High: Answer{
				Text:        "Our Remote Work Guidelines specify:\n\n• **Hybrid schedule**: 3 days in office, 2 days remote\n• **Home office stipend**: $500\n• **Core hours**: 10am-3pm in your timezone\n• **Full remote**: Available for approved roles only\n\nManager approval required for schedule changes.",
				Explanation: "High confidence because the Remote Work Guidelines document explicitly covers all aspects of the policy.",
			},
			Medium: Answer{
				Text:        "The company supports a **hybrid work arrangement** (3 days office, 2 days remote). For equipment stipends and other details, see the full Remote Work Guidelines.",
				Explanation: "Medium confidence because the Employee Handbook mentions the policy but detailed guidelines weren't fully reviewed.",
			},
			Low: Answer{
				Text:        "Remote work policy information wasn't found in the selected files. The HR Policies folder contains Remote Work Guidelines.",
				Explanation: "Low confidence because the search scope didn't include HR policy documents.",
			},
		},
		string(corpus.TagCompensation): {
			High: Answer{
				Text:        "Based on the Compensation Bands document:\n\n• **Senior Engineer**: $150,000 - $180,000\n• **Staff Engineer**: $180,000 - $220,000\n\nThese are base salary ranges. Equity and bonus structures are separate.",
				Explanation: "High confidence because the compensation bands spreadsheet contains explicit salary ranges by level.",
			},
			Medium: Answer{
				Text:        "Compensation information exists in the HR folder, but the detailed bands document may have restricted access. The Employee Handbook mentions a competitive compensation philosophy.",
				Explanation: "Medium confidence because the detailed compensation data wasn't fully accessible in this scope.",
			},
			Low: Answer{
				Text:        "Compensation details weren't found in the selected files. This information is in the HR Policies folder (may require additional permissions).",
				Explanation: "Low confidence because compensation documents weren't in the search scope and may have access restrictions.",
			},
		},
		string(corpus.TagInterview): {
			High: Answer{
				Text:        "Interview feedback summary:\n\n• **Sarah Chen**: Strong recommendation. \"Excellent React architecture knowledge. Built component library. Recommended for senior role.\"\n\n• **Michael Torres**: Positive. \"Very strong Python/Django. React knowledge is functional but not deep. Good for fullstack role.\"",
				Explanation: "High confidence because interview notes contain direct quotes and clear recommendations from interviewers.",
			},
			Medium: Answer{
				Text:        "Interview notes exist for some candidates, but I could only access partial feedback. Sarah Chen's interview was positive; details on other candidates are limited.",
				Explanation: "Medium confidence because not all interview notes were in the search scope.",
			},
			Low: Answer{
				Text:        "Interview feedback wasn't found in the selected files. Check the Recruiting folder for interview notes.",
				Explanation: "Low confidence because interview documents weren't included in the search scope.",
			},
		},
		DefaultTopic: {
			High: Answer{
				Text:        "I found relevant information across the documents in scope. Could you refine your question to be more specific about what you're looking for?",
				Explanation: "The query matched some content but was too general to provide a focused answer.",
			},
			Medium: Answer{
				Text:        "I found some potentially related information, but I'm not certain it fully answers your question. Try being more specific or expanding your search scope.",
				Explanation: "Medium confidence because the query didn't closely match the content patterns I'm trained to recognize.",
			},
			Low: Answer{
				Text:        "I couldn't find information matching your question in the current scope. Try:\n\n• Searching all documents (global scope)\n• Selecting a different folder\n• Rephrasing your question",
				Explanation: "Low confidence because no documents in the current scope matched your query.",
			},
		},
	}
}
