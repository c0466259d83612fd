package catalog

import (
	"sort"
	"strings"
	"sync"

	types "github.com/yungbote/placement-backend/internal/domain"
)

// Per-analysis caps on the aggregated recommendation lists.
const (
	maxCourses        = 5
	maxCertifications = 3
)

// ResourceBundle is the matched courses and certifications for one or more
// skills. Both slices are always non-nil.
type ResourceBundle struct {
	Courses        []types.LearningResource `json:"courses"`
	Certifications []types.LearningResource `json:"certifications"`
}

// ResourceProvider maps skill names to recommended learning resources.
type ResourceProvider interface {
	// ResourcesFor matches one skill; falls back to the generic resource so a
	// learning path never ships without something to study.
	ResourcesFor(skillName string) ResourceBundle
	// BundleFor aggregates across all of an analysis's skills, appending the
	// generic fallback only when nothing at all matched, and applying the
	// per-analysis caps.
	BundleFor(skillNames []string) ResourceBundle
}

type resourceEntry struct {
	courses        []types.LearningResource
	certifications []types.LearningResource
}

var genericResource = types.LearningResource{
	Name:     "freeCodeCamp Curriculum",
	Provider: "freeCodeCamp",
	URL:      "https://www.freecodecamp.org/learn",
	Type:     "course",
	Free:     true,
}

// Keys are matched as case-insensitive substrings of the requested skill.
var resourceTable = map[string]resourceEntry{
	"javascript": {
		courses: []types.LearningResource{
			{Name: "JavaScript Algorithms and Data Structures", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures", Type: "course", Free: true},
			{Name: "The Complete JavaScript Course", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-javascript-course", Type: "course"},
		},
	},
	"react": {
		courses: []types.LearningResource{
			{Name: "React - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux", Type: "course"},
			{Name: "Full Stack Open", Provider: "University of Helsinki", URL: "https://fullstackopen.com", Type: "course", Free: true},
		},
	},
	"python": {
		courses: []types.LearningResource{
			{Name: "Python for Everybody", Provider: "Coursera", URL: "https://www.coursera.org/specializations/python", Type: "course"},
			{Name: "Scientific Computing with Python", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/scientific-computing-with-python", Type: "course", Free: true},
		},
		certifications: []types.LearningResource{
			{Name: "PCAP - Certified Associate Python Programmer", Provider: "Python Institute", URL: "https://pythoninstitute.org/pcap", Type: "certification"},
		},
	},
	"sql": {
		courses: []types.LearningResource{
			{Name: "SQL for Data Science", Provider: "Coursera", URL: "https://www.coursera.org/learn/sql-for-data-science", Type: "course"},
		},
	},
	"data structures": {
		courses: []types.LearningResource{
			{Name: "Data Structures and Algorithms Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/data-structures-algorithms", Type: "course"},
		},
	},
	"algorithms": {
		courses: []types.LearningResource{
			{Name: "Algorithms, Part I", Provider: "Coursera", URL: "https://www.coursera.org/learn/algorithms-part1", Type: "course", Free: true},
		},
	},
	"machine learning": {
		courses: []types.LearningResource{
			{Name: "Machine Learning Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Type: "course"},
		},
		certifications: []types.LearningResource{
			{Name: "TensorFlow Developer Certificate", Provider: "Google", URL: "https://www.tensorflow.org/certificate", Type: "certification"},
		},
	},
	"docker": {
		courses: []types.LearningResource{
			{Name: "Docker Mastery", Provider: "Udemy", URL: "https://www.udemy.com/course/docker-mastery", Type: "course"},
		},
		certifications: []types.LearningResource{
			{Name: "Docker Certified Associate", Provider: "Mirantis", URL: "https://training.mirantis.com/certification/dca-certification-exam", Type: "certification"},
		},
	},
	"aws": {
		courses: []types.LearningResource{
			{Name: "AWS Cloud Practitioner Essentials", Provider: "AWS", URL: "https://aws.amazon.com/training/learn-about/cloud-practitioner", Type: "course", Free: true},
		},
		certifications: []types.LearningResource{
			{Name: "AWS Certified Cloud Practitioner", Provider: "AWS", URL: "https://aws.amazon.com/certification/certified-cloud-practitioner", Type: "certification"},
		},
	},
	"statistics": {
		courses: []types.LearningResource{
			{Name: "Statistics with Python", Provider: "Coursera", URL: "https://www.coursera.org/specializations/statistics-with-python", Type: "course"},
		},
	},
	"node": {
		courses: []types.LearningResource{
			{Name: "Node.js, Express, MongoDB & More", Provider: "Udemy", URL: "https://www.udemy.com/course/nodejs-express-mongodb-bootcamp", Type: "course"},
		},
	},
	"git": {
		courses: []types.LearningResource{
			{Name: "Git and GitHub for Beginners", Provider: "freeCodeCamp", URL: "https://www.youtube.com/watch?v=RGOj5yH7evk", Type: "course", Free: true},
		},
	},
}

type resourceProvider struct{}

func NewResourceProvider() ResourceProvider {
	return &resourceProvider{}
}

func (p *resourceProvider) ResourcesFor(skillName string) ResourceBundle {
	out := matchResources(skillName)
	if len(out.Courses) == 0 && len(out.Certifications) == 0 {
		out.Courses = append(out.Courses, genericResource)
	}
	return out
}

func (p *resourceProvider) BundleFor(skillNames []string) ResourceBundle {
	out := ResourceBundle{
		Courses:        []types.LearningResource{},
		Certifications: []types.LearningResource{},
	}
	seen := map[string]bool{}
	for _, name := range skillNames {
		matched := matchResources(name)
		for _, c := range matched.Courses {
			if !seen[c.Name] {
				seen[c.Name] = true
				out.Courses = append(out.Courses, c)
			}
		}
		for _, c := range matched.Certifications {
			if !seen[c.Name] {
				seen[c.Name] = true
				out.Certifications = append(out.Certifications, c)
			}
		}
	}
	if len(out.Courses) == 0 && len(out.Certifications) == 0 {
		out.Courses = append(out.Courses, genericResource)
	}
	if len(out.Courses) > maxCourses {
		out.Courses = out.Courses[:maxCourses]
	}
	if len(out.Certifications) > maxCertifications {
		out.Certifications = out.Certifications[:maxCertifications]
	}
	return out
}

func matchResources(skillName string) ResourceBundle {
	out := ResourceBundle{
		Courses:        []types.LearningResource{},
		Certifications: []types.LearningResource{},
	}
	needle := strings.ToLower(strings.TrimSpace(skillName))
	if needle == "" {
		return out
	}
	for _, key := range resourceKeys() {
		if strings.Contains(needle, key) {
			entry := resourceTable[key]
			out.Courses = append(out.Courses, entry.courses...)
			out.Certifications = append(out.Certifications, entry.certifications...)
		}
	}
	return out
}

var (
	keysOnce   sync.Once
	sortedKeys []string
)

// Stable match order so repeated analyses recommend in the same order.
func resourceKeys() []string {
	keysOnce.Do(func() {
		for k := range resourceTable {
			sortedKeys = append(sortedKeys, k)
		}
		sort.Strings(sortedKeys)
	})
	return sortedKeys
}
