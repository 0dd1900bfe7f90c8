package pipeline_test

import (
	"fmt"

	"github.com/askiada/go-compose/pkg/pipeline"
)

func ExamplePipeline_Invoke() {
	pipe, err := pipeline.New([]pipeline.Step{
		pipeline.NewStep("increment", pipeline.Transform(func(v any) any {
			return v.(int) + 2
		})),
		pipeline.NewStep("multiply", pipeline.Transform(func(v any) any {
			return v.(int) * 10
		})),
	})
	if err != nil {
		panic(err)
	}

	out, err := pipe.Invoke(1)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: 30
}
