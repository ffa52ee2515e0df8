package cleanup

import "log"

type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs newest-first, so dependents shut down
// before what they depend on.
func CleanUp() {
	for i := len(jobs) - 1; i >= 0; i-- {
		j := jobs[i]
		log.Printf("Cleanup job %s started...", j.Name)
		err := j.F()
		if err != nil {
			log.Printf("Job finished with error: %v", err)
		} else {
			log.Println("Cleaned")
		}
	}
	jobs = nil
}
