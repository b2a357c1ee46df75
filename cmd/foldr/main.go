// Command foldr runs the collection operations over JSON documents:
//
//	echo '{"a":1,"b":2,"c":3}' | foldr pick --keys a,c
//	foldr filter --path active users.json
package main

import "github.com/hasbyte1/go-functional-utils/internal/cli"

func main() {
	cli.Execute()
}
