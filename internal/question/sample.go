package question

// SampleCompletion is a well-formed model reply used by the mock provider
// so offline runs produce a real question.
const SampleCompletion = "`" + `{
  "question": "Given an array of integers and a target, return the indices of the two numbers that add up to the target.",
  "difficulty": "easy",
  "category": "algorithms",
  "hints": [
    "A brute-force double loop works but is quadratic.",
    "Store each number's index in a map as you scan."
  ],
  "solution": "def two_sum(nums, target):\n    seen = {}\n    for i, n in enumerate(nums):\n        if target - n in seen:\n            return [seen[target - n], i]\n        seen[n] = i",
  "test_cases": [
    {"input": "nums = [2, 7, 11, 15], target = 9", "expected_output": "[0, 1]"},
    {"input": "nums = [3, 2, 4], target = 6", "expected_output": "[1, 2]"},
    {"input": "nums = [3, 3], target = 6", "expected_output": "[0, 1]"}
  ]
}` + "`"
