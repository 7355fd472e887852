// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package person

import "fmt"

// Person is the single record managed by the service.
type Person struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// String implements fmt.Stringer.
func (p Person) String() string {
	return fmt.Sprintf("%d:%s", p.ID, p.Name)
}

// Seed returns the entities every fresh store starts with.
func Seed() []Person {
	return []Person{
		{ID: 1, Name: "Some cool name #1"},
		{ID: 2, Name: "Some cool name #2"},
		{ID: 3, Name: "Some cool name #3"},
	}
}
