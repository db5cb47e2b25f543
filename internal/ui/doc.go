// Package ui contains the Bubble Tea program that renders the LinkUp header:
// the brand, the user search box with its results panel, the section tabs,
// the avatar and profile dropdown, and the compact hamburger menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. After Unmount
//     every message is dropped.
//   - Update routes each tea.Msg through a typed handler registry so key
//     presses, mouse presses, resizes and collaborator results each land in
//     a focused function.
//   - Mouse presses go to the pointer hub first, which tells the search
//     widget about presses outside its bounds, and then to the element under
//     the pointer.
//
// State ownership:
//   - The search widget state (query, open flag, loading flags, highlight)
//     lives in internal/ui/state.Search. The model only translates input
//     into calls on it.
//   - The signed-in user and the sidebar flag live in internal/state and are
//     reached through the Session and Sidebar interfaces.
//
// Collaborator calls:
//   - The directory fetch, navigation and logout run through the
//     internal/ui/command bus. Each call has a deadline and is abandoned when
//     the model unmounts, and its outcome comes back as a typed message.
//
// Rendering:
//   - layout computes the cell geometry of a frame. View draws that geometry
//     onto a canvas and mouse handling hit-tests against the same layout.
package ui
