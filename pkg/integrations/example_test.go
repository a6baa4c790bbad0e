package integrations_test

import (
	"fmt"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations"
)

func ExampleNormalizeRepoURL() {
	fmt.Println(integrations.NormalizeRepoURL("git@github.com:user/repo.git"))
	fmt.Println(integrations.NormalizeRepoURL("git://github.com/user/repo"))
	fmt.Println(integrations.NormalizeRepoURL("git+https://github.com/user/repo.git"))
	fmt.Println(integrations.NormalizeRepoURL("git+ssh://git@github.com/user/repo.git"))
	fmt.Println(integrations.NormalizeRepoURL("https://github.com/user/repo"))
	// Output:
	// https://github.com/user/repo
	// https://github.com/user/repo
	// https://github.com/user/repo
	// https://github.com/user/repo
	// https://github.com/user/repo
}
