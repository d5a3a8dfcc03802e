package analysis

import "github.com/jonathan/ats-analyzer/internal/types"

//nolint:gochecknoglobals
var sampleJobs = []types.SampleJob{
	{
		Title:   "Senior Python Developer",
		Company: "Tech Corp",
		Description: "We are looking for a Senior Python Developer with 5+ years of experience. " +
			"Required skills: Python, Django, Flask, PostgreSQL, AWS, Docker, Git, REST APIs, " +
			"Machine Learning, Data Analysis, Agile methodology. Experience with React and " +
			"JavaScript is a plus. Strong problem-solving skills and team collaboration required.",
	},
	{
		Title:   "Data Scientist",
		Company: "AI Solutions Inc",
		Description: "Seeking a Data Scientist to join our AI team. Must have experience with " +
			"Python, R, Machine Learning, Deep Learning, TensorFlow, PyTorch, Pandas, NumPy, " +
			"Scikit-learn, SQL, Statistics, Data Visualization, Jupyter Notebooks. " +
			"Experience with NLP and Computer Vision preferred.",
	},
	{
		Title:   "Full Stack Developer",
		Company: "StartupXYZ",
		Description: "Full Stack Developer needed for fast-paced startup environment. " +
			"Required: JavaScript, React, Node.js, Express, MongoDB, HTML5, CSS3, Git, " +
			"RESTful APIs, Agile development. Nice to have: TypeScript, GraphQL, AWS, Docker.",
	},
}

// SampleJobs returns a copy of the built-in sample job descriptions.
func SampleJobs() []types.SampleJob {
	out := make([]types.SampleJob, len(sampleJobs))
	copy(out, sampleJobs)
	return out
}
