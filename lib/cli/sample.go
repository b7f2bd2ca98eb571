// Copyright 2025 Antfly, Inc.
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

package cli

// SampleText is a built-in Serbian Cyrillic demonstration text, rich in
// named entities and split into paragraphs so chunking behavior is
// visible with a small max chunk size.
const SampleText = "Народна банка Србије је централна банка Републике Србије са седиштем у Београду. " +
	"Гувернер Народне банке Србије је Јорданка Табаковић која се налази на тој позицији од 2012. године. " +
	"Народна банка Србије је основана 1884. године као Привилегована народна банка Краљевине Србије.\n\n" +
	"Универзитет у Београду је најстарији и највећи универзитет у Србији, основан 1808. године. " +
	"Ректор Универзитета у Београду је професор Владан Ђокић. " +
	"Универзитет има 31 факултет и више од 90.000 студената. " +
	"Налази се у Београду, а његов главни кампус је на Студентском тргу.\n\n" +
	"Новак Ђоковић је српски тенисер рођен у Београду 1987. године. " +
	"Ђоковић је освојио 24 Гренд слем титуле у појединачној конкуренцији. " +
	"Тренутно живи у Монте Карлу, али редовно посећује Србију. " +
	"Његов тренер је био Горан Иванишевић, бивши хрватски тенисер."
